package adapter

import (
	"fmt"
	"strings"

	"github.com/i-am-called-glitchy/kirka-bot-go/internal/domain"
)

// Response accumulates chat output sections and renders them into the single
// line the game chat expects.
type Response struct {
	lines []string
}

func NewResponse() *Response {
	return &Response{}
}

func (r *Response) AddSection(content string) *Response {
	r.lines = append(r.lines, content)
	return r
}

func (r *Response) AddHeader(content string) *Response {
	r.lines = append(r.lines, fmt.Sprintf("*%s* ", content))
	return r
}

func (r *Response) AddError(message string) *Response {
	r.lines = append(r.lines, "❌ Error: "+message)
	return r
}

// OverwriteError discards everything accumulated so far and leaves a single
// error section.
func (r *Response) OverwriteError(message string) *Response {
	r.lines = []string{"❌ Error: " + message}
	return r
}

func (r *Response) Build() string {
	return strings.Join(r.lines, domain.ReplySeparator)
}
