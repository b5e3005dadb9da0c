package output

import (
	"bufio"
	"encoding/json"
)

func init() { register("jsonl", "application/x-ndjson", newJSONL) }

type jsonHit struct {
	Offset int64  `json:"offset"`
	End    int64  `json:"end"`
	Len    int    `json:"length"`
	Text   string `json:"text"`
}

// jsonl streams one JSON object per line
type jsonl struct {
	w   *bufio.Writer
	enc *json.Encoder
}

func newJSONL(w *bufio.Writer) Writer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &jsonl{w: w, enc: enc}
}

func (j *jsonl) Write(h Hit) error {
	return writeErr(j.enc.Encode(jsonHit{Offset: h.Offset, End: h.End(), Len: h.Len, Text: h.Text}))
}

func (j *jsonl) Flush() error { return writeErr(j.w.Flush()) }
