package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewImageIsZeroed(t *testing.T) {
	m := NewImage()
	for _, addr := range []uint16{0x0000, 0x00FF, 0x0100, 0x4000, 0xFFFF} {
		assert.Equal(t, uint8(0), m.Read(addr))
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	m := NewImage()
	m.Write(0x1234, 0x84)
	assert.Equal(t, uint8(0x84), m.Read(0x1234))
	// no other byte was touched
	assert.Equal(t, uint8(0), m.Read(0x1233))
	assert.Equal(t, uint8(0), m.Read(0x1235))
}

func TestWriteOverwrites(t *testing.T) {
	m := NewImage()
	m.Write(0x00FF, 0x01)
	m.Write(0x00FF, 0x02)
	assert.Equal(t, uint8(0x02), m.Read(0x00FF))
}

func TestPowerOnZeroesEverything(t *testing.T) {
	m := NewImage()
	m.Write(0x0000, 0xFF)
	m.Write(0xFFFF, 0xFF)
	m.Write(0x8000, 0xAA)
	m.PowerOn()
	for _, addr := range []uint16{0x0000, 0xFFFF, 0x8000} {
		assert.Equal(t, uint8(0), m.Read(addr), "addr %04X should be zero after PowerOn", addr)
	}
}

func TestHighestAddressIsValid(t *testing.T) {
	m := NewImage()
	// addr is a uint16 so there is no out-of-range case; the extremes are valid.
	m.Write(0xFFFF, 0x42)
	assert.Equal(t, uint8(0x42), m.Read(0xFFFF))
}
