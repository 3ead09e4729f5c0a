package status

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"dgiibot/models"
)

// prettyJSON indents a raw upstream document with two spaces, keeping key order.
// String escapes are decoded so non-ASCII text is shown as written.
// Bodies that are not JSON are rendered as a JSON string.
func prettyJSON(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return encodeIndented(string(raw))
	}

	normalized, err := normalizeJSON(trimmed)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, normalized, "", "  "); err != nil {
		return "", fmt.Errorf("failed to indent response: %w", err)
	}
	return out.String(), nil
}

// normalizeJSON re-encodes a valid document compactly, in the original key order,
// with string escapes decoded and numbers kept verbatim.
func normalizeJSON(raw json.RawMessage) (json.RawMessage, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var out bytes.Buffer
	if err := writeValue(decoder, &out); err != nil {
		return nil, fmt.Errorf("failed to normalize response: %w", err)
	}
	return out.Bytes(), nil
}

func writeValue(decoder *json.Decoder, out *bytes.Buffer) error {
	token, err := decoder.Token()
	if err != nil {
		return err
	}

	switch value := token.(type) {
	case json.Delim:
		closing := byte(']')
		if value == '{' {
			closing = '}'
		}
		out.WriteByte(byte(value))
		for i := 0; decoder.More(); i++ {
			if i > 0 {
				out.WriteByte(',')
			}
			if value == '{' {
				key, err := decoder.Token()
				if err != nil {
					return err
				}
				if err := writeString(out, key.(string)); err != nil {
					return err
				}
				out.WriteByte(':')
			}
			if err := writeValue(decoder, out); err != nil {
				return err
			}
		}
		// consume the closing delimiter
		if _, err := decoder.Token(); err != nil {
			return err
		}
		out.WriteByte(closing)
	case string:
		return writeString(out, value)
	case json.Number:
		out.WriteString(value.String())
	case bool:
		out.WriteString(strconv.FormatBool(value))
	case nil:
		out.WriteString("null")
	default:
		return fmt.Errorf("unexpected token %v", token)
	}
	return nil
}

func writeString(out *bytes.Buffer, value string) error {
	encoded, err := encodeIndented(value)
	if err != nil {
		return err
	}
	out.WriteString(encoded)
	return nil
}

func encodeIndented(v any) (string, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return "", fmt.Errorf("failed to encode response: %w", err)
	}
	return strings.TrimSuffix(out.String(), "\n"), nil
}

// projectServicesStatus keeps servicio, estatus and ambiente of every element, in order.
// Elements that are not objects project to all-null fields; a null element is an error.
func projectServicesStatus(raw json.RawMessage) ([]models.ServiceStatus, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("expected an array of services: %w", err)
	}
	if items == nil {
		return nil, fmt.Errorf("expected an array of services, got null")
	}

	projected := make([]models.ServiceStatus, 0, len(items))
	for i, item := range items {
		if bytes.Equal(bytes.TrimSpace(item), []byte("null")) {
			return nil, fmt.Errorf("element %d is null", i)
		}

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			projected = append(projected, models.ServiceStatus{})
			continue
		}

		status := models.ServiceStatus{}
		for key, target := range map[string]*json.RawMessage{
			"servicio": &status.Servicio,
			"estatus":  &status.Estatus,
			"ambiente": &status.Ambiente,
		} {
			value, ok := fields[key]
			if !ok {
				continue
			}
			normalized, err := normalizeJSON(value)
			if err != nil {
				return nil, fmt.Errorf("element %d field %s: %w", i, key, err)
			}
			*target = normalized
		}
		projected = append(projected, status)
	}
	return projected, nil
}
