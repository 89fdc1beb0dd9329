package core

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// recorder keeps the length of every write and can fail the nth one.
type recorder struct {
	lens   []int
	data   bytes.Buffer
	failOn int
	short  bool
}

func (r *recorder) Write(p []byte) (int, error) {
	r.lens = append(r.lens, len(p))
	if len(r.lens) == r.failOn {
		if r.short {
			return len(p) - 1, nil
		}
		return 0, errors.New("disk full")
	}
	return r.data.Write(p)
}

// writes is the number of write calls p performs.
func writes(p Plan) int64 {
	if p.Remainder > 0 {
		return p.Passes + 1
	}
	return p.Passes
}

func TestPlanOverwrite(t *testing.T) {
	tests := []struct {
		size  int64
		block int
		want  Plan
	}{
		{0, 4096, Plan{Passes: 0, Remainder: 0}},
		{1, 4096, Plan{Passes: 0, Remainder: 1}},
		{4095, 4096, Plan{Passes: 0, Remainder: 4095}},
		{4096, 4096, Plan{Passes: 1, Remainder: 0}},
		{4097, 4096, Plan{Passes: 1, Remainder: 1}},
		{3*4096 + 10, 4096, Plan{Passes: 3, Remainder: 10}},
		{10, 3, Plan{Passes: 3, Remainder: 1}},
	}

	for _, tt := range tests {
		got := PlanOverwrite(tt.size, tt.block)
		require.Equal(t, tt.want, got, "size=%d block=%d", tt.size, tt.block)
		require.Equal(t, tt.size, got.Passes*int64(tt.block)+got.Remainder)
	}
}

func TestOverwriteWritesExactlySize(t *testing.T) {
	for _, size := range []int64{0, 1, 511, 512, 513, 4096, 4097, 10000} {
		for _, block := range []int{1, 7, 512, 4096} {
			r := &recorder{}
			require.NoError(t, Overwrite(r, size, block))

			plan := PlanOverwrite(size, block)
			require.Len(t, r.lens, int(writes(plan)), "size=%d block=%d", size, block)
			require.Equal(t, size, int64(r.data.Len()))
			require.Equal(t, make([]byte, size), r.data.Bytes())

			for i, n := range r.lens {
				if int64(i) < plan.Passes {
					require.Equal(t, block, n)
				} else {
					require.Equal(t, int(plan.Remainder), n)
				}
			}
		}
	}
}

func TestOverwriteZeroLengthMakesNoWrites(t *testing.T) {
	r := &recorder{}
	require.NoError(t, Overwrite(r, 0, DefaultBlockSize))
	require.Empty(t, r.lens)
}

func TestOverwriteStopsOnFailedWrite(t *testing.T) {
	tests := []struct {
		name   string
		failOn int
		short  bool
		cause  error
	}{
		{name: "full block error", failOn: 2, cause: nil},
		{name: "final block error", failOn: 3, cause: nil},
		{name: "short full block", failOn: 1, short: true, cause: io.ErrShortWrite},
		{name: "short final block", failOn: 3, short: true, cause: io.ErrShortWrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{failOn: tt.failOn, short: tt.short}
			err := Overwrite(r, 2*64+5, 64)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrWrite)
			if tt.cause != nil {
				require.ErrorIs(t, err, tt.cause)
			}
			require.Len(t, r.lens, tt.failOn)
		})
	}
}

func TestOverwriteRejectsInvalidBlockSize(t *testing.T) {
	err := Overwrite(&recorder{}, 10, 0)
	require.ErrorIs(t, err, ErrWrite)
}
