package ingest

import (
	"path"
	"regexp"
	"strings"

	"github.com/freassets/curator/internal/assets"
	"github.com/freassets/curator/internal/classify"
)

var dimensionsPattern = regexp.MustCompile(`(\d{3,4})x(\d{3,4})`)

// deriveMetadata builds classification evidence from a candidate: extension,
// size in KB, best-effort dimensions from the filename, and folder context
// from the origin path. Direct uploads have no origin path and take the
// standing upload folder context.
func deriveMetadata(c assets.Candidate) classify.Metadata {
	filePath := c.Path
	folderName := "Uploads"
	parentFolderName := "Local"

	if filePath == "" {
		filePath = "/" + c.FileName
	} else {
		folderName, parentFolderName = folderContext(filePath)
	}

	meta := classify.Metadata{
		FileName:         c.FileName,
		FilePath:         filePath,
		FileExtension:    "." + extensionOf(c.FileName),
		FolderName:       folderName,
		ParentFolderName: parentFolderName,
	}

	if c.SizeBytes > 0 {
		sizeKB := (c.SizeBytes + 512) / 1024
		meta.FileSizeKB = &sizeKB
	}

	if match := dimensionsPattern.FindStringSubmatch(c.FileName); match != nil {
		dims := match[1] + "x" + match[2]
		meta.Dimensions = &dims
	}

	return meta
}

// folderContext returns the immediate and parent folder names of a path.
func folderContext(p string) (folder, parent string) {
	p = strings.ReplaceAll(p, "\\", "/")
	parts := make([]string, 0)
	for _, part := range strings.Split(p, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}

	if len(parts) >= 2 {
		folder = parts[len(parts)-2]
	}
	if len(parts) >= 3 {
		parent = parts[len(parts)-3]
	}
	return folder, parent
}

func extensionOf(filename string) string {
	ext := path.Ext(filename)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
