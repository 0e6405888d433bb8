package serialization

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// errNoEncodingForType signifies that there's no encoding for the given type.
var errNoEncodingForType = errors.New("there's no encoding for this type")

var errMalformed = errors.New("errMalformed")

// MaxVarBytesLength caps the length prefix accepted by ReadElement, so a
// corrupted prefix can't trigger a huge allocation.
const MaxVarBytesLength = 1 << 20

// WriteElement writes the little endian representation of element to w.
// Strings and byte slices are written as a uint64 length followed by their
// bytes.
func WriteElement(w io.Writer, element interface{}) error {
	var buf [8]byte
	switch e := element.(type) {
	case uint32:
		binary.LittleEndian.PutUint32(buf[:4], e)
		_, err := w.Write(buf[:4])
		return errors.WithStack(err)

	case int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(e))
		_, err := w.Write(buf[:])
		return errors.WithStack(err)

	case uint64:
		binary.LittleEndian.PutUint64(buf[:], e)
		_, err := w.Write(buf[:])
		return errors.WithStack(err)

	case string:
		err := WriteElement(w, uint64(len(e)))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, e)
		return errors.WithStack(err)

	case []byte:
		err := WriteElement(w, uint64(len(e)))
		if err != nil {
			return err
		}
		_, err = w.Write(e)
		return errors.WithStack(err)
	}

	return errors.Wrapf(errNoEncodingForType, "couldn't find a way to write type %T", element)
}

// WriteElements writes multiple items to w. It is equivalent to multiple
// calls to WriteElement.
func WriteElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		err := WriteElement(w, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// ReadElement reads the next sequence of bytes from r using little endian
// depending on the concrete type of element pointed to.
func ReadElement(r io.Reader, element interface{}) error {
	var buf [8]byte
	switch e := element.(type) {
	case *uint32:
		_, err := io.ReadFull(r, buf[:4])
		if err != nil {
			return errors.WithStack(err)
		}
		*e = binary.LittleEndian.Uint32(buf[:4])
		return nil

	case *int64:
		_, err := io.ReadFull(r, buf[:])
		if err != nil {
			return errors.WithStack(err)
		}
		*e = int64(binary.LittleEndian.Uint64(buf[:]))
		return nil

	case *uint64:
		_, err := io.ReadFull(r, buf[:])
		if err != nil {
			return errors.WithStack(err)
		}
		*e = binary.LittleEndian.Uint64(buf[:])
		return nil

	case *string:
		data, err := readVarBytes(r)
		if err != nil {
			return err
		}
		*e = string(data)
		return nil

	case *[]byte:
		data, err := readVarBytes(r)
		if err != nil {
			return err
		}
		*e = data
		return nil
	}

	return errors.Wrapf(errNoEncodingForType, "couldn't find a way to read type %T", element)
}

// ReadElements reads multiple items from r. It is equivalent to multiple
// calls to ReadElement.
func ReadElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		err := ReadElement(r, element)
		if err != nil {
			return err
		}
	}
	return nil
}

func readVarBytes(r io.Reader) ([]byte, error) {
	var length uint64
	err := ReadElement(r, &length)
	if err != nil {
		return nil, err
	}
	if length > MaxVarBytesLength {
		return nil, errors.Wrapf(errMalformed, "length prefix %d is above the maximum of %d",
			length, MaxVarBytesLength)
	}
	data := make([]byte, length)
	_, err = io.ReadFull(r, data)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return data, nil
}

// IsMalformedError returns whether the error indicates a malformed data source
func IsMalformedError(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) || errors.Is(err, errMalformed)
}
