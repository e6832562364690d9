package model

// Document category constants.
const (
	DocContract  = "contract"
	DocPermit    = "permit"
	DocBlueprint = "blueprint"
	DocInvoice   = "invoice"
	DocPhoto     = "photo"
	DocOther     = "other"
)

// DocumentCategories lists all valid categories in display order.
var DocumentCategories = []string{
	DocContract, DocPermit, DocBlueprint, DocInvoice, DocPhoto, DocOther,
}

// ProjectDocument is a stored project file: contract, permit,
// blueprint, invoice scan, or similar. URL may be a link or an
// embedded base64 blob.
type ProjectDocument struct {
	ID         string `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Category   string `json:"category" db:"category"`
	URL        string `json:"url,omitempty" db:"url"`
	FileSize   string `json:"fileSize,omitempty" db:"file_size"`
	UploadDate string `json:"uploadDate" db:"upload_date"`
	Notes      string `json:"notes,omitempty" db:"notes"`
	Position   int    `json:"-" db:"position"`
}
