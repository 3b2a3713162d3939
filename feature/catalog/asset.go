package catalog

import (
	"path"
	"strconv"
	"strings"
)

// Asset is one pickable catalog entry.
type Asset struct {
	ID        uint   `gorm:"primaryKey" json:"id,omitempty" yaml:"id"`
	Name      string `gorm:"size:191;index" json:"name" yaml:"name"`
	Category  string `gorm:"size:64" json:"category" yaml:"category"`
	ObjectKey string `gorm:"size:255" json:"object_key,omitempty" yaml:"object_key"`
}

// TableName pins the table name.
func (Asset) TableName() string {
	return "assets"
}

// Ref is the stable reference of an asset: its id, or its object key when it only
// exists in the object store.
func (a Asset) Ref() string {
	if a.ID != 0 {
		return strconv.FormatUint(uint64(a.ID), 10)
	}
	return a.ObjectKey
}

// String is what the memory source filters on.
func (a Asset) String() string {
	return a.Name + " " + a.Category
}

// AssetID is the identity used across all sources.
func AssetID(a Asset) any {
	return a.Ref()
}

// objectKey lays an asset out as prefix/category/name+ext.
func objectKey(prefix, ext string, a Asset) string {
	if a.ObjectKey != "" {
		return a.ObjectKey
	}
	category := a.Category
	if category == "" {
		category = "misc"
	}
	return prefix + category + "/" + a.Name + ext
}

// decodeObject is the inverse of objectKey.
func decodeObject(prefix, ext, key string) (Asset, bool) {
	if !strings.HasSuffix(key, ext) || strings.HasSuffix(key, "/") {
		return Asset{}, false
	}
	rel := strings.TrimPrefix(key, prefix)
	dir, file := path.Split(rel)
	name := strings.TrimSuffix(file, ext)
	if name == "" {
		return Asset{}, false
	}
	return Asset{
		Name:      name,
		Category:  strings.Trim(dir, "/"),
		ObjectKey: key,
	}, true
}
