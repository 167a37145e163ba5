package files

import (
	"encoding/json"
	"strings"

	"filesmanager/internal/domain"
)

// flexibleID tolerates clients sending the root parent as the number 0 while
// real node ids are strings.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*f = flexibleID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}

// UploadRequest is the POST /files body. Data carries base64 content for
// file and image nodes.
type UploadRequest struct {
	Name     string          `json:"name"`
	Type     domain.FileType `json:"type"`
	ParentID flexibleID      `json:"parentId"`
	IsPublic bool            `json:"isPublic"`
	Data     string          `json:"data"`
}

// NodeDescriptor is the public view of a FileNode; it never carries the
// on-disk path.
type NodeDescriptor struct {
	ID       string          `json:"id"`
	UserID   string          `json:"userId"`
	Name     string          `json:"name"`
	Type     domain.FileType `json:"type"`
	IsPublic bool            `json:"isPublic"`
	ParentID string          `json:"parentId"`
}

func toDescriptor(n *domain.FileNode) NodeDescriptor {
	return NodeDescriptor{
		ID:       n.ID,
		UserID:   n.UserID,
		Name:     n.Name,
		Type:     n.Type,
		IsPublic: n.IsPublic,
		ParentID: n.ParentID,
	}
}
