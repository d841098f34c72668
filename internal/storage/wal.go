package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"
	"os"
	"sync"

	"github.com/IhaveDebt/smallworld/pkg/vec"
)

const OpInsert = 1

// maxDim bounds the vector length accepted during replay, so a corrupt
// length field cannot trigger a huge allocation before the CRC check.
const maxDim = 1 << 16

// WAL is an append-only log of inserted vectors. Ids are not stored:
// the index assigns them densely in insertion order, so replaying the
// records in file order reproduces the exact same assignment.
type WAL struct {
	file *os.File
	bw   *bufio.Writer
	mu   sync.Mutex
}

func OpenWAL(path string) (*WAL, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}

	return &WAL{
		file: f,
		bw:   bufio.NewWriter(f),
	}, nil
}

// WriteInsert appends an insertion record to the log.
// Format: [CRC(4)][Op(1)][VecLen(4)][VecBytes(...)]
func (w *WAL) WriteInsert(v vec.Vector) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	payloadSize := 1 + 4 + len(v)*4
	buf := make([]byte, payloadSize)

	offset := 0
	buf[offset] = OpInsert
	offset++

	binary.LittleEndian.PutUint32(buf[offset:], uint32(len(v)))
	offset += 4

	for _, f := range v {
		binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(f))
		offset += 4
	}

	crc := crc32.ChecksumIEEE(buf)
	if err := binary.Write(w.bw, binary.LittleEndian, crc); err != nil {
		return err
	}
	if _, err := w.bw.Write(buf); err != nil {
		return err
	}

	return w.bw.Flush()
}

func (w *WAL) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.bw.Flush(); err != nil {
		return err
	}
	return w.file.Close()
}

// Replay calls the callback for every record in the WAL, in file order.
// This is used on startup to rebuild the index. Records that fail the
// CRC check abort the replay.
func (w *WAL) Replay(onInsert func(v vec.Vector)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return err
	}

	br := bufio.NewReader(w.file)

	for {
		var crc uint32
		err := binary.Read(br, binary.LittleEndian, &crc)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read crc: %w", err)
		}

		header := make([]byte, 5)
		if _, err := io.ReadFull(br, header); err != nil {
			return fmt.Errorf("read record header: %w", err)
		}

		op := header[0]
		if op != OpInsert {
			return fmt.Errorf("unknown op code %d", op)
		}

		vecLen := binary.LittleEndian.Uint32(header[1:])
		if vecLen > maxDim {
			return fmt.Errorf("vector length %d exceeds limit", vecLen)
		}

		payload := make([]byte, 5+int(vecLen)*4)
		copy(payload, header)
		if _, err := io.ReadFull(br, payload[5:]); err != nil {
			return fmt.Errorf("read vector data: %w", err)
		}

		if got := crc32.ChecksumIEEE(payload); got != crc {
			return fmt.Errorf("crc mismatch: got %08x, want %08x", got, crc)
		}

		v := make(vec.Vector, vecLen)
		for i := range v {
			bits := binary.LittleEndian.Uint32(payload[5+i*4:])
			v[i] = math.Float32frombits(bits)
		}

		onInsert(v)
	}

	// Reset pointer to end for appending.
	_, err := w.file.Seek(0, io.SeekEnd)
	return err
}
