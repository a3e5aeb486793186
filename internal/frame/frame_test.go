package frame

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/ehrlich-b/logstore"
)

func TestEncodeGet(t *testing.T) {
	got := Get{}.Encode()
	if !bytes.Equal(got, []byte{0x00}) {
		t.Errorf("Get encoding = %v, want [0]", got)
	}
}

func TestEncodeDelete(t *testing.T) {
	got := Delete{Key: []byte{0x01, 0x02}}.Encode()
	want := []byte{0x01, 0, 0, 0, 2, 0x01, 0x02}
	if !bytes.Equal(got, want) {
		t.Errorf("Delete encoding = %v, want %v", got, want)
	}
}

func TestEncodeSet(t *testing.T) {
	got := Set{Key: []byte{0x01, 0x02}, Value: []byte{0x03, 0x04, 0x05}}.Encode()
	want := []byte{0x02, 0, 0, 0, 2, 0x01, 0x02, 0, 0, 0, 3, 0x03, 0x04, 0x05}
	if !bytes.Equal(got, want) {
		t.Errorf("Set encoding = %v, want %v", got, want)
	}
}

func TestEncodeSetExact(t *testing.T) {
	// Set("a","1") is the canonical single-record log payload
	got := Set{Key: []byte("a"), Value: []byte("1")}.Encode()
	want := []byte{0x02, 0, 0, 0, 1, 0x61, 0, 0, 0, 1, 0x31}
	if !bytes.Equal(got, want) {
		t.Errorf("Set(a,1) encoding = %v, want %v", got, want)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	ops := []Op{
		Get{},
		Delete{Key: []byte("k")},
		Delete{Key: []byte{}},
		Set{Key: []byte("key"), Value: []byte("value")},
		Set{Key: []byte{}, Value: []byte{}},
		Set{Key: []byte{0x00, 0xff}, Value: bytes.Repeat([]byte{0xaa}, 300)},
	}

	for _, op := range ops {
		decoded, err := Decode(op.Encode())
		if err != nil {
			t.Fatalf("Decode(%T) failed: %v", op, err)
		}
		if !opEqual(op, decoded) {
			t.Errorf("Decode(Encode(%#v)) = %#v", op, decoded)
		}
	}
}

// opEqual compares ops treating nil and empty byte slices as equal
func opEqual(a, b Op) bool {
	switch av := a.(type) {
	case Get:
		_, ok := b.(Get)
		return ok
	case Delete:
		bv, ok := b.(Delete)
		return ok && bytes.Equal(av.Key, bv.Key)
	case Set:
		bv, ok := b.(Set)
		return ok && bytes.Equal(av.Key, bv.Key) && bytes.Equal(av.Value, bv.Value)
	}
	return false
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{"empty buffer", []byte{}},
		{"trailing byte after get", []byte{0x00, 0x00}},
		{"unknown tag", []byte{0x7f}},
		{"delete missing key length", []byte{0x01, 0, 0}},
		{"delete key past end", []byte{0x01, 0, 0, 0, 5, 0x01}},
		{"delete trailing bytes", []byte{0x01, 0, 0, 0, 1, 0x01, 0xff}},
		{"set missing value length", []byte{0x02, 0, 0, 0, 1, 0x6b}},
		{"set value past end", []byte{0x02, 0, 0, 0, 1, 0x6b, 0, 0, 0, 9, 0x01}},
		{"set trailing bytes", []byte{0x02, 0, 0, 0, 1, 0x6b, 0, 0, 0, 1, 0x76, 0xff}},
		{"huge length prefix", []byte{0x01, 0xff, 0xff, 0xff, 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := Decode(tt.buf)
			if err == nil {
				t.Fatalf("Decode(%v) = %#v, want parse error", tt.buf, op)
			}
			if !logstore.IsCode(err, logstore.ErrCodeParse) {
				t.Errorf("Decode(%v) error category = %v, want parse", tt.buf, err)
			}
		})
	}
}

func TestDecodeDoesNotAliasInput(t *testing.T) {
	buf := Set{Key: []byte("k"), Value: []byte("v")}.Encode()
	op, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	set := op.(Set)

	// Appending to the decoded key must not scribble over the value bytes
	// that follow it in the original buffer.
	_ = append(set.Key, 'x')
	if want := []byte("v"); !bytes.Equal(set.Value, want) {
		t.Errorf("value corrupted by key append: %v", set.Value)
	}
}

func TestDecodeTypes(t *testing.T) {
	op, err := Decode([]byte{0x00})
	if err != nil {
		t.Fatal(err)
	}
	if reflect.TypeOf(op) != reflect.TypeOf(Get{}) {
		t.Errorf("Decode([0x00]) = %T, want Get", op)
	}
}
