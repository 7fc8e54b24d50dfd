package serialization

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// Format constants.
const (
	MaxHeaderSize    = 100 << 20 // Reject headers larger than 100 MiB
	MaxTensorNameLen = 256
	MetadataKey      = "__metadata__"
	ChecksumKey      = "sha256"
	DTypeF64         = "F64"
)

// TensorHeader represents a tensor in the SafeTensors header.
type TensorHeader struct {
	DType       string   `json:"dtype"`
	Shape       []int64  `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"`
}

// Encode writes tensors and metadata to w in SafeTensors format.
//
// Tensors are written in alphabetical order by name. A "sha256" entry with
// the checksum of the data section is added to the metadata.
func Encode(w io.Writer, tensors map[string][]float64, metadata map[string]string) error {
	names := make([]string, 0, len(tensors))
	for name := range tensors {
		if err := validateTensorName(name); err != nil {
			return err
		}
		names = append(names, name)
	}
	sort.Strings(names)

	header := make(map[string]any, len(names)+1)
	var data []byte
	for _, name := range names {
		values := tensors[name]
		begin := int64(len(data))
		for _, v := range values {
			data = binary.LittleEndian.AppendUint64(data, math.Float64bits(v))
		}
		header[name] = TensorHeader{
			DType:       DTypeF64,
			Shape:       []int64{int64(len(values))},
			DataOffsets: [2]int64{begin, int64(len(data))},
		}
	}

	meta := make(map[string]string, len(metadata)+1)
	for k, v := range metadata {
		meta[k] = v
	}
	sum := sha256.Sum256(data)
	meta[ChecksumKey] = hex.EncodeToString(sum[:])
	header[MetadataKey] = meta

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	// Write header size (8 bytes, little-endian uint64)
	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write tensor data: %w", err)
	}
	return nil
}

// Decode reads tensors and metadata written by Encode.
//
// Only F64 tensors are supported. When the metadata carries a checksum,
// the data section is verified against it.
func Decode(r io.Reader) (map[string][]float64, map[string]string, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, nil, fmt.Errorf("failed to read header size: %w", err)
	}
	if headerSize > MaxHeaderSize {
		return nil, nil, fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, headerSize)
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(headerJSON, &raw); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read tensor data: %w", err)
	}

	metadata := map[string]string{}
	if msg, ok := raw[MetadataKey]; ok {
		if err := json.Unmarshal(msg, &metadata); err != nil {
			return nil, nil, fmt.Errorf("%w: metadata: %w", ErrInvalidHeader, err)
		}
		delete(raw, MetadataKey)
	}
	if want, ok := metadata[ChecksumKey]; ok {
		sum := sha256.Sum256(data)
		if hex.EncodeToString(sum[:]) != want {
			return nil, nil, ErrChecksumMismatch
		}
	}

	tensors := make(map[string][]float64, len(raw))
	for name, msg := range raw {
		var th TensorHeader
		if err := json.Unmarshal(msg, &th); err != nil {
			return nil, nil, fmt.Errorf("%w: tensor %q: %w", ErrInvalidHeader, name, err)
		}
		values, err := decodeTensor(name, th, data)
		if err != nil {
			return nil, nil, err
		}
		tensors[name] = values
	}
	return tensors, metadata, nil
}

func decodeTensor(name string, th TensorHeader, data []byte) ([]float64, error) {
	if th.DType != DTypeF64 {
		return nil, &ValidationError{Tensor: name, Details: th.DType, Err: ErrUnsupportedDType}
	}

	elems := int64(1)
	for _, dim := range th.Shape {
		if dim < 0 {
			return nil, &ValidationError{Tensor: name, Details: fmt.Sprintf("negative dim %d", dim), Err: ErrInvalidHeader}
		}
		if dim > 0 && elems > (math.MaxInt64/8)/dim {
			return nil, &ValidationError{Tensor: name, Details: fmt.Sprintf("shape %v overflows", th.Shape), Err: ErrInvalidHeader}
		}
		elems *= dim
	}

	begin, end := th.DataOffsets[0], th.DataOffsets[1]
	if begin < 0 || end < begin {
		return nil, &ValidationError{Tensor: name, Details: fmt.Sprintf("offsets [%d, %d)", begin, end), Err: ErrInvalidHeader}
	}
	if end > int64(len(data)) {
		return nil, &ValidationError{
			Tensor:  name,
			Details: fmt.Sprintf("end %d > data size %d", end, len(data)),
			Err:     ErrOutOfBounds,
		}
	}
	if elems > int64(len(data))/8 {
		return nil, &ValidationError{
			Tensor:  name,
			Details: fmt.Sprintf("%d elements exceed data size %d", elems, len(data)),
			Err:     ErrInvalidHeader,
		}
	}
	if end-begin != elems*8 {
		return nil, &ValidationError{
			Tensor:  name,
			Details: fmt.Sprintf("%d bytes for %d elements", end-begin, elems),
			Err:     ErrInvalidHeader,
		}
	}

	values := make([]float64, elems)
	for i := range values {
		off := begin + int64(i)*8
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[off : off+8]))
	}
	return values, nil
}

// validateTensorName rejects names that could not round-trip or that look
// like paths.
func validateTensorName(name string) error {
	var details string
	switch {
	case name == "":
		details = "empty name"
	case name == MetadataKey:
		details = "reserved name"
	case len(name) > MaxTensorNameLen:
		details = fmt.Sprintf("length %d > max %d", len(name), MaxTensorNameLen)
	case strings.Contains(name, ".."):
		details = "contains '..'"
	case strings.ContainsAny(name, "/\\\x00"):
		details = "contains path separator or null byte"
	default:
		return nil
	}
	return &ValidationError{Tensor: name, Details: details, Err: ErrInvalidTensorName}
}
