package serialization

import (
	"bytes"
	"testing"
)

func TestWriteElementsLayout(t *testing.T) {
	var buf bytes.Buffer
	err := WriteElements(&buf, uint32(1), int64(-1), "ab", []byte{0xff})
	if err != nil {
		t.Fatalf("WriteElements: %s", err)
	}

	expected := []byte{
		0x01, 0x00, 0x00, 0x00, // uint32
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // int64 -1
		0x02, 0, 0, 0, 0, 0, 0, 0, 'a', 'b', // string
		0x01, 0, 0, 0, 0, 0, 0, 0, 0xff, // []byte
	}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Fatalf("unexpected encoding\n got: %x\nwant: %x", buf.Bytes(), expected)
	}

	var (
		index  uint32
		amount int64
		str    string
		data   []byte
	)
	err = ReadElements(&buf, &index, &amount, &str, &data)
	if err != nil {
		t.Fatalf("ReadElements: %s", err)
	}
	if index != 1 || amount != -1 || str != "ab" || !bytes.Equal(data, []byte{0xff}) {
		t.Fatalf("unexpected decoded values %d %d %q %x", index, amount, str, data)
	}
}

func TestWriteElementUnknownType(t *testing.T) {
	err := WriteElement(&bytes.Buffer{}, 1.5)
	if err == nil {
		t.Fatalf("expected an error for float64")
	}
	err = ReadElement(&bytes.Buffer{}, new(float64))
	if err == nil {
		t.Fatalf("expected an error for *float64")
	}
}

func TestReadElementMalformed(t *testing.T) {
	var str string
	err := ReadElement(bytes.NewReader([]byte{0x05, 0, 0, 0, 0, 0, 0, 0, 'a'}), &str)
	if !IsMalformedError(err) {
		t.Fatalf("expected a malformed error for a truncated string, got %v", err)
	}

	tooLong := []byte{0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0}
	err = ReadElement(bytes.NewReader(tooLong), &str)
	if !IsMalformedError(err) {
		t.Fatalf("expected a malformed error for an oversized prefix, got %v", err)
	}
}
