package llm

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"
)

// TokenEncoding is the BPE vocabulary used to count and cut prompts.  The
// vocabulary ships inside the binary, so no download happens at runtime.
const TokenEncoding = "cl100k_base"

var (
	encOnce sync.Once
	enc     *tiktoken.Tiktoken
	encErr  error
)

func encoding() (*tiktoken.Tiktoken, error) {
	encOnce.Do(func() {
		tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
		enc, encErr = tiktoken.GetEncoding(TokenEncoding)
		if encErr != nil {
			encErr = fmt.Errorf("failed to load %s encoding: %w", TokenEncoding, encErr)
		}
	})
	return enc, encErr
}

// Truncate keeps at most limit BPE tokens of text and returns the kept text
// and its token count.  limit <= 0 disables truncation.
func Truncate(text string, limit int) (string, int, error) {
	e, err := encoding()
	if err != nil {
		return "", 0, err
	}
	ids := e.Encode(text, nil, nil)
	if limit <= 0 || len(ids) <= limit {
		return text, len(ids), nil
	}
	// a cut can land inside a multi-byte rune
	kept := strings.ToValidUTF8(e.Decode(ids[:limit]), "")
	return kept, limit, nil
}
