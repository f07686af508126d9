package cmd

import (
	"io"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/msto63/strcore/foundation/core/config"
	scerror "github.com/msto63/strcore/foundation/core/error"
)

// readInput reads the named file, or stdin for "" and "-", bounded by
// input.max_size, and decodes it per input.encoding.
func (a *app) readInput(cmd *cobra.Command, name string) ([]byte, error) {
	var r io.Reader = cmd.InOrStdin()
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			code := scerror.CodeIOError
			if os.IsNotExist(err) {
				code = scerror.CodeNotFound
			}
			return nil, scerror.Wrap(err, "cannot open input").
				WithCode(code).
				WithOperation("strx.readInput").
				WithDetail("path", name)
		}
		defer f.Close()
		r = f
	}

	limit := a.cfg.Input.MaxSize.Int()
	if limit < math.MaxInt {
		r = io.LimitReader(r, int64(limit)+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, scerror.Wrap(err, "cannot read input").
			WithCode(scerror.CodeIOError).
			WithOperation("strx.readInput")
	}
	if len(data) > limit {
		return nil, scerror.New("input exceeds " + humanize.IBytes(uint64(limit))).
			WithCode(scerror.CodeValueOutOfRange).
			WithOperation("strx.readInput").
			WithDetail("max_size", limit)
	}

	return decode(data, a.cfg.Input.Encoding)
}

// decode converts UTF-16 input to UTF-8. In auto mode only a byte order
// mark selects a decoder; anything else passes through unchanged.
func decode(data []byte, enc string) ([]byte, error) {
	var dec transform.Transformer
	switch enc {
	case config.EncodingUTF8:
		return data, nil
	case config.EncodingUTF16:
		dec = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	default:
		dec = unicode.BOMOverride(encoding.Nop.NewDecoder())
	}

	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return nil, scerror.Wrap(err, "cannot decode input").
			WithCode(scerror.CodeInvalidFormat).
			WithOperation("strx.decode").
			WithDetail("encoding", enc)
	}
	return out, nil
}
