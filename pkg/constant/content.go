package constant

const (
	UPDATED                  = "%s updated successfully"
	DELETED                  = "%s deleted successfully"
	UPLOAD_NO_FILE           = "No file provided"
	UPLOAD_CONFIG_MISSING    = "Server configuration error"
	UPLOAD_FAILED            = "Upload failed"
	PAGE_NUMBER_OUT_OF_RANGE = "page number out of range"
)
