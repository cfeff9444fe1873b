package render

import (
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"glyphwatch/internal/detect"
)

// SpanJSON описывает один помеченный диапазон локальной части.
type SpanJSON struct {
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
	Text  string `json:"text" msgpack:"text"`
}

// Document is the machine-readable outcome for one identifier, shared by
// the json and msgpack outputs.
type Document struct {
	ID       string     `json:"id" msgpack:"id"`
	Local    string     `json:"local,omitempty" msgpack:"local,omitempty"`
	Domain   string     `json:"domain" msgpack:"domain"`
	Resource string     `json:"resource,omitempty" msgpack:"resource,omitempty"`
	Mixed    bool       `json:"mixed" msgpack:"mixed"`
	Majority string     `json:"majority" msgpack:"majority"`
	Minority []string   `json:"minority,omitempty" msgpack:"minority,omitempty"`
	Spans    []SpanJSON `json:"spans,omitempty" msgpack:"spans,omitempty"`
}

// NewDocument converts a detector report. Spans are kept per code point,
// not merged.
func NewDocument(rep detect.Report) Document {
	local := rep.ID.Local()
	doc := Document{
		ID:       rep.ID.String(),
		Local:    local,
		Domain:   rep.ID.Domain(),
		Resource: rep.ID.Resource(),
		Mixed:    rep.Mixed(),
		Majority: rep.Majority.String(),
		Minority: []string(rep.Minority),
	}
	if len(rep.Spans) > 0 {
		doc.Spans = make([]SpanJSON, 0, len(rep.Spans))
		for _, sp := range rep.Spans {
			doc.Spans = append(doc.Spans, SpanJSON{Start: sp.Start, End: sp.End, Text: sp.Slice(local)})
		}
	}
	return doc
}

// WriteJSON writes docs as an indented JSON array.
func WriteJSON(w io.Writer, docs []Document) error {
	if docs == nil {
		docs = []Document{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(docs)
}

// WriteMsgpack writes docs as a single msgpack array.
func WriteMsgpack(w io.Writer, docs []Document) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(docs)
}

// ReadMsgpack decodes what WriteMsgpack wrote.
func ReadMsgpack(r io.Reader) ([]Document, error) {
	var docs []Document
	if err := msgpack.NewDecoder(r).Decode(&docs); err != nil {
		return nil, err
	}
	return docs, nil
}
