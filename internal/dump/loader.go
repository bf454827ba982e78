package dump

import (
	"fmt"
	"io"
	"os"

	"github.com/tidwall/gjson"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ClassGroup is one top-level entry of the docs file: a native-class tag and
// the ordered class records declared under it.
type ClassGroup struct {
	NativeClass string
	Classes     []ClassRecord
}

// Load reads a docs file and returns its class groups in file order. The
// export tool writes UTF-16 with a BOM, so the bytes are transcoded before
// JSON parsing.
func Load(path string) ([]ClassGroup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening docs file: %w", err)
	}
	defer f.Close()

	decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	data, err := io.ReadAll(transform.NewReader(f, decoder))
	if err != nil {
		return nil, fmt.Errorf("decoding docs file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes an already-transcoded docs document.
func Parse(data []byte) ([]ClassGroup, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("docs file is not valid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, fmt.Errorf("docs file: expected a top-level array of class groups")
	}

	var groups []ClassGroup
	doc.ForEach(func(_, element gjson.Result) bool {
		tag := element.Get("NativeClass").String()
		group := ClassGroup{NativeClass: tag}
		element.Get("Classes").ForEach(func(_, class gjson.Result) bool {
			group.Classes = append(group.Classes, NewClassRecord(tag, class))
			return true
		})
		groups = append(groups, group)
		return true
	})
	return groups, nil
}
