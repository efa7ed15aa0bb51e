// Copyright 2015 Andrew E. Bruno. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package retrieveseq

// SIG - 2bit file signature
const SIG = 0x1A412743

const defaultBufSize = 4096

// HeaderPrefix marks a record header line in FASTA input and output.
const HeaderPrefix = '>'

// BASE_N -
const BASE_N = 'N'

// BASE_T -
const BASE_T = 'T'

// BASE_C -
const BASE_C = 'C'

// BASE_A -
const BASE_A = 'A'

// BASE_G -
const BASE_G = 'G'

// BYTES2NT - 2bit code to nucleotide
var BYTES2NT = []byte{
	BASE_T,
	BASE_C,
	BASE_A,
	BASE_G,
}

// COMPLEMENT maps every byte to its complementary base. Bytes that are not
// nucleotide codes map to themselves.
var COMPLEMENT [256]byte

func init() {
	for i := range COMPLEMENT {
		COMPLEMENT[i] = byte(i)
	}

	pairs := [][2]byte{
		{BASE_A, BASE_T},
		{BASE_C, BASE_G},
		{'R', 'Y'}, // A/G <-> C/T
		{'K', 'M'},
		{'B', 'V'},
		{'D', 'H'},
		{'S', 'S'},
		{'W', 'W'},
		{BASE_N, BASE_N},
	}
	for _, p := range pairs {
		COMPLEMENT[p[0]] = p[1]
		COMPLEMENT[p[1]] = p[0]
		// lower case (soft-masked) bases keep their case
		COMPLEMENT[p[0]+32] = p[1] + 32
		COMPLEMENT[p[1]+32] = p[0] + 32
	}
}
