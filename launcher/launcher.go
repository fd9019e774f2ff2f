package launcher

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/casekit/chain"
	"github.com/erraggy/casekit/transform"
)

const (
	// DefaultIconDir is the icon directory used when none is configured.
	DefaultIconDir = "./icons"
	// DefaultMultilineTitle replaces the title of values spanning several lines.
	DefaultMultilineTitle = "Multiline output"

	// ChainedUID identifies the result of a command chain.
	ChainedUID = "chained"
	// ErrorUID identifies the result of a failed command chain.
	ErrorUID = "error"
	// ErrorTitle is the title of every error item.
	ErrorTitle = "Error"

	// PathSeparator joins the transform names of a chain in its subtitle.
	PathSeparator = "→"
)

// Icon points at the image shown next to an item.
type Icon struct {
	Path string `json:"path" yaml:"path"`
}

// Item is one entry of the result list.
type Item struct {
	UID      string `json:"uid"      yaml:"uid"`
	Title    string `json:"title"    yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	// Arg is the value handed back to the host when the item is chosen. It
	// always holds the full result, even when Title does not.
	Arg  string `json:"arg"  yaml:"arg"`
	Icon Icon   `json:"icon" yaml:"icon"`
	// Valid is only set, to false, on placeholder items of failed transforms.
	Valid *bool `json:"valid,omitempty" yaml:"valid,omitempty"`
}

// Response is the document returned to the launcher host.
type Response struct {
	Items []Item `json:"items" yaml:"items"`
}

// WriteJSON encodes r to w as a single line of JSON. HTML characters are not
// escaped, so values such as "a&b" appear as typed.
func (r *Response) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("launcher: failed to encode response: %w", err)
	}
	return nil
}

// Processor builds responses for launcher queries.
type Processor struct {
	// IconDir is the directory holding the transform icons.
	IconDir string
	// MultilineTitle is shown instead of values containing line breaks.
	MultilineTitle string
}

// New creates a Processor with the default icon directory and multi-line title.
func New() *Processor {
	return &Processor{
		IconDir:        DefaultIconDir,
		MultilineTitle: DefaultMultilineTitle,
	}
}

// Process runs query with a default Processor.
func Process(query string) *Response {
	return New().Process(query)
}

// Process runs query and returns the items to display.
func (p *Processor) Process(query string) *Response {
	subject, cmds := chain.ParseQuery(query)
	if len(cmds) > 0 {
		return &Response{Items: []Item{p.chained(subject, cmds)}}
	}
	return &Response{Items: p.all(subject)}
}

func (p *Processor) chained(subject string, cmds []chain.Command) Item {
	subtitle := strings.Join(chain.Describe(cmds), PathSeparator)
	icon := p.icon(ChainedUID)

	res, err := chain.Run(subject, cmds)
	if err != nil {
		return Item{
			UID:      ErrorUID,
			Title:    ErrorTitle,
			Subtitle: subtitle,
			Arg:      subject,
			Icon:     icon,
		}
	}
	return Item{
		UID:      ChainedUID,
		Title:    p.title(res.Value),
		Subtitle: subtitle,
		Arg:      res.Value,
		Icon:     icon,
	}
}

// all applies every registered transform to subject with default arguments.
func (p *Processor) all(subject string) []Item {
	specs := transform.All()
	items := make([]Item, 0, len(specs))
	for _, s := range specs {
		items = append(items, p.single(s, subject))
	}
	return items
}

func (p *Processor) single(s transform.Spec, subject string) Item {
	uid := strings.ToLower(s.Name)
	icon := p.icon(s.Name)

	value, err := s.Apply(subject, nil)
	if err != nil {
		valid := false
		return Item{
			UID:      uid,
			Title:    ErrorTitle,
			Subtitle: s.Name + ": " + err.Error(),
			Arg:      subject,
			Icon:     icon,
			Valid:    &valid,
		}
	}

	subtitle := s.Name
	if s.Hint != "" {
		subtitle += ". " + s.Hint
	}
	return Item{
		UID:      uid,
		Title:    p.title(value),
		Subtitle: subtitle,
		Arg:      value,
		Icon:     icon,
	}
}

func (p *Processor) title(value string) string {
	if strings.ContainsAny(value, "\n\r") {
		return p.MultilineTitle
	}
	return value
}

func (p *Processor) icon(name string) Icon {
	return Icon{Path: strings.TrimSuffix(p.IconDir, "/") + "/" + name + ".png"}
}
