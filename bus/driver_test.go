package bus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenerRejectsTenBit(t *testing.T) {
	b := New(&mockTransport{})

	_, err := Opener{Bus: b}.Open(0, 0x39, true)
	require.Error(t, err)
}

func TestOpenerRejectsOutOfRangeAddress(t *testing.T) {
	b := New(&mockTransport{})

	_, err := Opener{Bus: b}.Open(0, 0x100, false)
	require.Error(t, err)

	_, err = Opener{Bus: b}.Open(0, -1, false)
	require.Error(t, err)
}

func TestConnReadWrite(t *testing.T) {
	mt := &mockTransport{replies: [][]byte{
		{0x01},       // write ack
		{0x02},       // read count
		{0x12, 0x34}, // read payload
	}}
	b := New(mt)

	conn, err := Opener{Bus: b}.Open(0, 0x39, false)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.Write([]byte{0x80}))
	require.Equal(t, []byte{'2', 'A', 0x39, 'L', 1, 'W', 0x80}, mt.sends[0])

	buf := make([]byte, 2)
	require.NoError(t, conn.Read(buf))
	require.Equal(t, []byte{0x12, 0x34}, buf)
	require.Equal(t, []byte{'2', 'A', 0x39, 'L', 2, 'R'}, mt.sends[1])
}
