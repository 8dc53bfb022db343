package entities

// RenderedDocument is the output of a single render pass. It is produced
// once per send, handed to the notification sender and then discarded.
type RenderedDocument struct {
	Bytes    []byte
	Filename string
	MIMEType string
}
