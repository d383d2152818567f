package hypersink

// Event is one classified log record handed to the delivery layer by an
// upstream dispatcher. Classification itself happens upstream; the delivery
// layer only renders the event through a Formatter and writes the result.
type Event struct {
	// Level is the severity assigned by the classifier.
	Level Level
	// Group and Category identify the subsystem that produced the record.
	// Either may be empty.
	Group    string
	Category string
	// Message is the record's text.
	Message string
	// File and Line locate the call site when the producer recorded one.
	File string
	Line int
}
