package localchat

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// Counter counts prompt tokens with the cl100k_base encoding. When the
// encoding cannot be loaded it estimates four characters per token.
type Counter struct {
	enc  *tiktoken.Tiktoken
	once sync.Once
	err  error
}

// Count returns the number of tokens in text.
func (c *Counter) Count(text string) int {
	c.once.Do(func() {
		c.enc, c.err = tiktoken.GetEncoding("cl100k_base")
	})
	if c.err != nil || c.enc == nil {
		return len(text) / 4
	}
	return len(c.enc.Encode(text, nil, nil))
}
