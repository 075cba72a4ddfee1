package eventbus

type DocEventType string

const (
	DocEventSaved        DocEventType = "Saved"
	DocEventUpdated      DocEventType = "Updated"
	DocEventDeleted      DocEventType = "Deleted"
	DocEventExported     DocEventType = "Exported"
	DocEventExportFailed DocEventType = "ExportFailed"
)

type DocEvent struct {
	Type      DocEventType
	RunID     string // correlates the log lines of one export
	DocID     uint   // 0 for unsaved exports
	DocNumber string
	DocType   string
	Format    string
	Size      int
	Err       error
}

type DocEventHandler = Handler[DocEvent]
type DocEventBus = Bus[DocEventType, DocEvent]

func NewDocEventBus() *DocEventBus {
	return NewBus[DocEventType, DocEvent]()
}
