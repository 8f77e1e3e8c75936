package protocol

import (
	"bytes"
	"errors"
	"testing"
)

func TestBuildWrite(t *testing.T) {
	tests := []struct {
		name    string
		dev     byte
		payload []byte
		want    []byte
		wantErr error
	}{
		{
			name:    "empty payload",
			dev:     0x40,
			payload: nil,
			want:    []byte{'2', 'A', 0x40, 'L', 0, 'W'},
		},
		{
			name:    "three bytes",
			dev:     0x14,
			payload: []byte{0xDE, 0xAD, 0xBE},
			want:    []byte{'2', 'A', 0x14, 'L', 3, 'W', 0xDE, 0xAD, 0xBE},
		},
		{
			name:    "maximum payload",
			dev:     0x14,
			payload: make([]byte, 255),
		},
		{
			name:    "payload over one length byte",
			dev:     0x14,
			payload: make([]byte, 256),
			wantErr: ErrPayloadTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkt, err := BuildWrite(tt.dev, tt.payload)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.want != nil && !bytes.Equal(pkt, tt.want) {
				t.Errorf("packet = % X, want % X", pkt, tt.want)
			}
			if int(pkt[4]) != len(tt.payload) {
				t.Errorf("length prefix = %d, want %d", pkt[4], len(tt.payload))
			}
		})
	}
}

func TestBuildWriteRegister(t *testing.T) {
	tests := []struct {
		name    string
		dev     byte
		reg     byte
		payload []byte
		want    []byte
		wantErr error
	}{
		{
			// the canonical firmware example: write 0,1,2 at register 0x10
			name:    "documented example",
			dev:     0x14,
			reg:     0x10,
			payload: []byte{0x00, 0x01, 0x02},
			want:    []byte{'2', 'A', 0x14, 'L', 4, 'W', 0x10, 0x00, 0x01, 0x02},
		},
		{
			name:    "empty payload still carries register",
			dev:     0x20,
			reg:     0x04,
			payload: nil,
			want:    []byte{'2', 'A', 0x20, 'L', 1, 'W', 0x04},
		},
		{
			name:    "maximum payload with register byte",
			dev:     0x14,
			reg:     0x01,
			payload: make([]byte, 254),
		},
		{
			name:    "register byte leaves no room",
			dev:     0x14,
			reg:     0x01,
			payload: make([]byte, 255),
			wantErr: ErrPayloadTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkt, err := BuildWriteRegister(tt.dev, tt.reg, tt.payload)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.want != nil && !bytes.Equal(pkt, tt.want) {
				t.Errorf("packet = % X, want % X", pkt, tt.want)
			}
			if int(pkt[4]) != len(tt.payload)+1 {
				t.Errorf("length prefix = %d, want %d", pkt[4], len(tt.payload)+1)
			}
		})
	}
}

func TestWriteRegisterRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		dev     byte
		reg     byte
		payload []byte
	}{
		{name: "no data", dev: 0x00, reg: 0x00},
		{name: "single byte", dev: 0x14, reg: 0x10, payload: []byte{0x55}},
		{name: "several bytes", dev: 0x77, reg: 0xFF, payload: []byte{1, 2, 3, 4, 5}},
		{name: "maximum", dev: 0xFF, reg: 0x80, payload: bytes.Repeat([]byte{0xA5}, 254)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkt, err := BuildWriteRegister(tt.dev, tt.reg, tt.payload)
			if err != nil {
				t.Fatalf("build: %v", err)
			}

			w, err := ParseWrite(pkt)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if w.Device != tt.dev {
				t.Errorf("device = 0x%02X, want 0x%02X", w.Device, tt.dev)
			}
			if w.Restart {
				t.Error("plain write parsed as write-restart")
			}
			if w.Payload[0] != tt.reg {
				t.Errorf("register = 0x%02X, want 0x%02X", w.Payload[0], tt.reg)
			}
			if !bytes.Equal(w.Payload[1:], tt.payload) {
				t.Errorf("payload = % X, want % X", w.Payload[1:], tt.payload)
			}
		})
	}
}

func TestBuildReadRequest(t *testing.T) {
	tests := []struct {
		name    string
		dev     byte
		n       int
		want    []byte
		wantErr error
	}{
		{name: "three bytes", dev: 0x14, n: 3, want: []byte{'2', 'A', 0x14, 'L', 3, 'R'}},
		{name: "zero bytes", dev: 0x14, n: 0, want: []byte{'2', 'A', 0x14, 'L', 0, 'R'}},
		{name: "maximum", dev: 0x14, n: 255, want: []byte{'2', 'A', 0x14, 'L', 255, 'R'}},
		{name: "negative", dev: 0x14, n: -1, wantErr: ErrPayloadTooLarge},
		{name: "over one length byte", dev: 0x14, n: 256, wantErr: ErrPayloadTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkt, err := BuildReadRequest(tt.dev, tt.n)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(pkt, tt.want) {
				t.Errorf("packet = % X, want % X", pkt, tt.want)
			}

			dev, n, err := ParseReadRequest(pkt)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if dev != tt.dev || n != tt.n {
				t.Errorf("parsed (0x%02X, %d), want (0x%02X, %d)", dev, n, tt.dev, tt.n)
			}
		})
	}
}

func TestBuildRegisterSelect(t *testing.T) {
	pkt := BuildRegisterSelect(0x14, 0x10)

	want := []byte{'2', 'A', 0x14, 'L', 1, 'w', 0x10}
	if !bytes.Equal(pkt, want) {
		t.Fatalf("packet = % X, want % X", pkt, want)
	}

	w, err := ParseWrite(pkt)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !w.Restart {
		t.Error("register select parsed as plain write")
	}
	if w.Device != 0x14 || w.Payload[0] != 0x10 {
		t.Errorf("parsed dev=0x%02X reg=0x%02X", w.Device, w.Payload[0])
	}
}

func TestBuildReadContinue(t *testing.T) {
	pkt, err := BuildReadContinue(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{'2', 'L', 3, 'R'}
	if !bytes.Equal(pkt, want) {
		t.Fatalf("packet = % X, want % X", pkt, want)
	}

	if _, err := BuildReadContinue(300); !errors.Is(err, ErrPayloadTooLarge) {
		t.Errorf("error = %v, want %v", err, ErrPayloadTooLarge)
	}
}

func TestBuildSetFrequency(t *testing.T) {
	tests := []struct {
		name string
		hz   int
		want byte
	}{
		{name: "500 kHz", hz: 500000, want: 50},
		{name: "100 kHz", hz: 100000, want: 10},
		{name: "truncates below a 10 kHz step", hz: 123456, want: 12},
		{name: "2.55 MHz is the top of the range", hz: 2550000, want: 255},
		{name: "2.56 MHz wraps to zero", hz: 2560000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkt := BuildSetFrequency(tt.hz)
			want := []byte{'2', 'F', tt.want}
			if !bytes.Equal(pkt, want) {
				t.Errorf("packet = % X, want % X", pkt, want)
			}
		})
	}
}
