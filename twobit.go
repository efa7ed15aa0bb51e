// Copyright 2015 Andrew E. Bruno. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package retrieveseq

import (
	"encoding/binary"
	"fmt"
	"io"
)

// 2bit header
type header struct {
	sig       uint32
	version   uint32
	count     uint32
	reserved  uint32
	byteOrder binary.ByteOrder
}

// Block represents either blocks of Ns or masked (lower-case) blocks
type Block struct {
	start int
	count int
}

// seqRecord stores sequence record from the file index
type seqRecord struct {
	dnaSize  uint32
	nBlocks  []Block
	mBlocks  []Block
	reserved uint32
}

// twoBitReader reads the index of a 2bit file and unpacks single records.
type twoBitReader struct {
	reader io.ReadSeeker
	hdr    header
	names  []string // file order
	index  map[string]int
}

// Return the size in packed bytes of a dna sequence. 4 bases per byte
func packedSize(dnaSize int) int {
	return (dnaSize + 3) >> 2
}

// End - Return end of block
func (b Block) End() int {
	return b.start + b.count
}

func (r *twoBitReader) uint32() (uint32, error) {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(r.reader, buf); err != nil {
		return 0, err
	}
	return r.hdr.byteOrder.Uint32(buf), nil
}

// Parse the header of a 2bit file
func (r *twoBitReader) parseHeader() error {
	b := make([]byte, 16)
	if _, err := io.ReadFull(r.reader, b); err != nil {
		return fmt.Errorf("failed to read 2bit header: %w", err)
	}

	r.hdr.sig = binary.BigEndian.Uint32(b[0:4])
	r.hdr.byteOrder = binary.BigEndian

	if r.hdr.sig != SIG {
		r.hdr.sig = binary.LittleEndian.Uint32(b[0:4])
		r.hdr.byteOrder = binary.LittleEndian
		if r.hdr.sig != SIG {
			return fmt.Errorf("invalid sig, not a 2bit file?")
		}
	}

	r.hdr.version = r.hdr.byteOrder.Uint32(b[4:8])
	if r.hdr.version != 0 {
		return fmt.Errorf("unsupported 2bit version %d", r.hdr.version)
	}
	r.hdr.count = r.hdr.byteOrder.Uint32(b[8:12])
	r.hdr.reserved = r.hdr.byteOrder.Uint32(b[12:16])
	if r.hdr.reserved != 0 {
		return fmt.Errorf("2bit header reserved != 0, got %d", r.hdr.reserved)
	}

	return nil
}

// Parse the file index of a 2bit file
func (r *twoBitReader) parseIndex() error {
	r.index = make(map[string]int, r.hdr.count)
	r.names = make([]string, 0, r.hdr.count)

	for i := 0; i < int(r.hdr.count); i++ {
		size := make([]byte, 1)
		if _, err := io.ReadFull(r.reader, size); err != nil {
			return fmt.Errorf("failed to read file index: %w", err)
		}

		name := make([]byte, size[0])
		if _, err := io.ReadFull(r.reader, name); err != nil {
			return fmt.Errorf("failed to read file index: %w", err)
		}

		offset, err := r.uint32()
		if err != nil {
			return fmt.Errorf("failed to read file index: %w", err)
		}

		r.names = append(r.names, string(name))
		r.index[string(name)] = int(offset)
	}

	return nil
}

// Parse the nBlock and mBlock coordinates
func (r *twoBitReader) parseBlockCoords() ([]Block, error) {
	count, err := r.uint32()
	if err != nil {
		return nil, fmt.Errorf("failed to read blockCount: %w", err)
	}

	blocks := make([]Block, count)
	for i := range blocks {
		start, err := r.uint32()
		if err != nil {
			return nil, fmt.Errorf("failed to read block start: %w", err)
		}
		blocks[i].start = int(start)
	}
	for i := range blocks {
		size, err := r.uint32()
		if err != nil {
			return nil, fmt.Errorf("failed to read block size: %w", err)
		}
		blocks[i].count = int(size)
	}

	return blocks, nil
}

// Parse the sequence record information, leaving the reader at the packed DNA
func (r *twoBitReader) parseRecord(name string) (*seqRecord, error) {
	offset, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("invalid sequence name: %s", name)
	}

	if _, err := r.reader.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to %s: %w", name, err)
	}

	rec := new(seqRecord)

	var err error
	if rec.dnaSize, err = r.uint32(); err != nil {
		return nil, fmt.Errorf("failed to read dnaSize: %w", err)
	}

	if rec.nBlocks, err = r.parseBlockCoords(); err != nil {
		return nil, fmt.Errorf("failed to read nBlocks: %w", err)
	}

	if rec.mBlocks, err = r.parseBlockCoords(); err != nil {
		return nil, fmt.Errorf("failed to read mBlocks: %w", err)
	}

	if rec.reserved, err = r.uint32(); err != nil {
		return nil, fmt.Errorf("failed to read reserved: %w", err)
	}
	if rec.reserved != 0 {
		return nil, fmt.Errorf("invalid reserved field in record %s", name)
	}

	return rec, nil
}

// readSequence unpacks the whole record with name, N blocks as N and
// masked blocks in lower case.
func (r *twoBitReader) readSequence(name string) ([]byte, error) {
	rec, err := r.parseRecord(name)
	if err != nil {
		return nil, err
	}

	bases := int(rec.dnaSize)
	size := packedSize(bases)
	dna := make([]byte, 0, size*4)
	buf := make([]byte, defaultBufSize)

	for remaining := size; remaining > 0; {
		sz := defaultBufSize
		if remaining < sz {
			sz = remaining
		}
		if _, err := io.ReadFull(r.reader, buf[:sz]); err != nil {
			return nil, fmt.Errorf("failed to read %d dna bytes: %w", sz, err)
		}

		for _, base := range buf[:sz] {
			var four [4]byte
			for j := 3; j >= 0; j-- {
				four[j] = BYTES2NT[int(base&0x3)]
				base >>= 2
			}
			dna = append(dna, four[:]...)
		}
		remaining -= sz
	}

	seq := dna[:bases]

	for _, b := range rec.nBlocks {
		for i := b.start; i < b.End() && i < len(seq); i++ {
			seq[i] = BASE_N
		}
	}

	for _, b := range rec.mBlocks {
		for i := b.start; i < b.End() && i < len(seq); i++ {
			// Faster lower case.. see: https://groups.google.com/forum/#!topic/golang-nuts/Il2DX4xpW3w
			seq[i] = seq[i] + 32 // ('a' - 'A')
		}
	}

	return seq, nil
}

// newTwoBitReader returns a 2bit reader with the header and index parsed
func newTwoBitReader(r io.ReadSeeker) (*twoBitReader, error) {
	tb := &twoBitReader{reader: r}

	if err := tb.parseHeader(); err != nil {
		return nil, err
	}

	if err := tb.parseIndex(); err != nil {
		return nil, err
	}

	return tb, nil
}
