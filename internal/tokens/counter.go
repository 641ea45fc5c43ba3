package tokens

import (
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
	"github.com/rs/zerolog"
)

const DefaultEncoding = "cl100k_base"

// Counter estimates how many tokens a prompt will use. The encoding is loaded
// on first use (tiktoken may have to fetch it); when that fails the counter
// falls back to roughly four characters per token.
type Counter struct {
	encoding string
	logger   *zerolog.Logger

	once   sync.Once
	encode func(string) int
}

func NewCounter(encoding string, logger *zerolog.Logger) *Counter {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	return &Counter{
		encoding: encoding,
		logger:   logger,
	}
}

func (c *Counter) init() {
	if c.encode != nil {
		return
	}

	tkm, err := tiktoken.GetEncoding(c.encoding)
	if err != nil {
		c.logger.Warn().Err(err).Str("encoding", c.encoding).Msg("failed to init tokenizer, using estimate")
		c.encode = Estimate
		return
	}

	c.encode = func(s string) int {
		return len(tkm.Encode(s, nil, nil))
	}
}

// Count is safe for concurrent use.
func (c *Counter) Count(s string) int {
	if s == "" {
		return 0
	}
	c.once.Do(c.init)
	return c.encode(s)
}

// Estimate is the fallback heuristic, rounded up.
func Estimate(s string) int {
	return (utf8.RuneCountInString(s) + 3) / 4
}
