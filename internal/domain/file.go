package domain

import "time"

type FileType string

const (
	TypeFolder FileType = "folder"
	TypeFile   FileType = "file"
	TypeImage  FileType = "image"
)

// RootParentID is the sentinel parent of top-level nodes.
const RootParentID = "0"

// ValidFileType reports whether t is one of the accepted node types.
func ValidFileType(t FileType) bool {
	return t == TypeFolder || t == TypeFile || t == TypeImage
}

// FileNode is a file or folder in the hierarchy. LocalPath points at the blob
// on disk for file/image nodes and is never exposed over the API; folders have
// no LocalPath. Visibility does not cascade through the hierarchy.
type FileNode struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;index" json:"userId"`
	Name      string    `gorm:"column:name" json:"name"`
	Type      FileType  `gorm:"column:type" json:"type"`
	IsPublic  bool      `gorm:"column:is_public" json:"isPublic"`
	ParentID  string    `gorm:"column:parent_id;index" json:"parentId"`
	LocalPath string    `gorm:"column:local_path" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
}

func (FileNode) TableName() string { return "files" }
