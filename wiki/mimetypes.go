package wiki

import (
	"mime"
	"path"
	"strings"
)

var mimeTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"png":  "image/png",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
	"ico":  "image/vnd.microsoft.icon",
	"mp3":  "audio/mpeg",
	"ogg":  "audio/ogg",
	"wav":  "audio/wav",
	"flac": "audio/flac",
	"mp4":  "video/mp4",
	"webm": "video/webm",
	"ogv":  "video/ogg",
	"mkv":  "video/x-matroska",
	"pdf":  "application/pdf",
	"zip":  "application/zip",
	"gz":   "application/x-gzip",
	"tgz":  "application/x-gtar",
	"tar":  "application/x-tar",
	"bz2":  "application/x-bzip2",
	"7z":   "application/x-7z-compressed",
	"rar":  "application/rar",
	"txt":  "text/plain",
	"csv":  "text/csv",
	"odt":  "application/vnd.oasis.opendocument.text",
	"ods":  "application/vnd.oasis.opendocument.spreadsheet",
	"odp":  "application/vnd.oasis.opendocument.presentation",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"ppt":  "application/vnd.ms-powerpoint",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
}

// MimeType returns the lower case extension of id and its mime type. The mime type is empty
// for extensions the wiki does not know.
func (w *Wiki) MimeType(id string) (string, string) {
	return mimeType(id)
}

func mimeType(id string) (string, string) {
	if idx := strings.IndexAny(id, "?#"); idx >= 0 {
		id = id[:idx]
	}
	leaf := id[strings.LastIndexAny(id, ":/")+1:]
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(leaf), "."))
	if ext == "" {
		return "", ""
	}
	if mt, ok := mimeTypes[ext]; ok {
		return ext, mt
	}
	if mt := mime.TypeByExtension("." + ext); mt != "" {
		if idx := strings.IndexByte(mt, ';'); idx >= 0 {
			mt = mt[:idx]
		}
		return ext, mt
	}
	return ext, ""
}
