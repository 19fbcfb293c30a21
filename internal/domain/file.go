package domain

import (
	"fmt"
	"time"
)

type FileAsset struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"type"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func (f FileAsset) RecordID() string { return f.ID }

// HumanSize renders the byte count in the largest fitting unit.
func (f FileAsset) HumanSize() string {
	const unit = 1024
	if f.Size < unit {
		return fmt.Sprintf("%d B", f.Size)
	}
	div, exp := int64(unit), 0
	for n := f.Size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(f.Size)/float64(div), "KMGT"[exp])
}
