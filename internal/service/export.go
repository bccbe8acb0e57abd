package service

import (
	"fmt"
	"strings"
	"time"

	"bookmark-manager-backend/internal/database/models"
	"bookmark-manager-backend/internal/logger"
	"bookmark-manager-backend/internal/repository"
)

// untaggedFolder is the catch-all folder for bookmarks without valid tags
const untaggedFolder = "未分类"

// exportRootFolder names the single folder wrapping the whole export
const exportRootFolder = "bmm-export"

// htmlEscaper applies the minimal escaping the Netscape format needs. Full
// entity encoding would break round-tripping through browsers that only
// decode these four.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// ExportService renders a scope's bookmarks as a Netscape bookmark file
type ExportService struct {
	bookmarks    repository.BookmarkRepositoryInterface
	bookmarkTags repository.BookmarkTagRepositoryInterface
	tags         repository.TagRepositoryInterface
}

// Ensure ExportService implements ExportServiceInterface
var _ ExportServiceInterface = (*ExportService)(nil)

// NewExportService creates a new ExportService
func NewExportService(
	bookmarks repository.BookmarkRepositoryInterface,
	bookmarkTags repository.BookmarkTagRepositoryInterface,
	tags repository.TagRepositoryInterface,
) *ExportService {
	return &ExportService{
		bookmarks:    bookmarks,
		bookmarkTags: bookmarkTags,
		tags:         tags,
	}
}

// ExportHTML renders every bookmark in the scope as a browser-importable
// Netscape bookmark document. The output is byte-identical for identical
// inputs: tags appear in their display order, bookmarks in manual order, a
// bookmark shows up in every folder of every tag it carries, and bookmarks
// without a valid tag collect in the 未分类 folder at the end. Tag IDs that
// no longer resolve to a tag are dropped.
func (s *ExportService) ExportHTML(userID int64) (string, error) {
	tags, err := s.tags.List(userID)
	if err != nil {
		return "", fmt.Errorf("failed to list tags: %w", err)
	}
	bookmarks, err := s.bookmarks.ListAll(userID)
	if err != nil {
		return "", fmt.Errorf("failed to list bookmarks: %w", err)
	}

	bookmarkIDs := make([]int64, len(bookmarks))
	for i, b := range bookmarks {
		bookmarkIDs[i] = b.ID
	}
	assocs, err := s.bookmarkTags.ListByBookmarkIDs(bookmarkIDs)
	if err != nil {
		return "", fmt.Errorf("failed to list bookmark tags: %w", err)
	}

	knownTags := make(map[int64]bool, len(tags))
	for _, t := range tags {
		knownTags[t.ID] = true
	}

	// Bucket bookmarks per tag, keeping the fetch order inside each bucket.
	// A bookmark belongs to every folder of every tag it carries.
	tagged := make(map[int64]bool, len(bookmarks))
	buckets := make(map[int64][]int, len(tags))
	indexByID := make(map[int64]int, len(bookmarks))
	for i, b := range bookmarks {
		indexByID[b.ID] = i
	}
	for _, a := range assocs {
		if !knownTags[a.TagID] {
			continue
		}
		idx, ok := indexByID[a.BookmarkID]
		if !ok {
			continue
		}
		buckets[a.TagID] = append(buckets[a.TagID], idx)
		tagged[a.BookmarkID] = true
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<!-- This is an automatically generated file.\n")
	b.WriteString("     It will be read and overwritten.\n")
	b.WriteString("     DO NOT EDIT! -->\n")
	b.WriteString(`<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">` + "\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")
	b.WriteString("    <DT><H3>" + htmlEscaper.Replace(exportRootFolder) + "</H3>\n")
	b.WriteString("    <DL><p>\n")

	for _, tag := range tags {
		indices := buckets[tag.ID]
		if len(indices) == 0 {
			continue
		}
		writeFolder(&b, tag.Name, indices, bookmarks)
	}

	var untagged []int
	for i, bm := range bookmarks {
		if !tagged[bm.ID] {
			untagged = append(untagged, i)
		}
	}
	if len(untagged) > 0 {
		writeFolder(&b, untaggedFolder, untagged, bookmarks)
	}

	b.WriteString("    </DL><p>\n")
	b.WriteString("</DL><p>\n")

	logger.New().WithFields(map[string]interface{}{
		"user_id":   userID,
		"bookmarks": len(bookmarks),
		"tags":      len(tags),
	}).Info("Exported bookmark collection")

	return b.String(), nil
}

func writeFolder(b *strings.Builder, name string, indices []int, bookmarks []models.Bookmark) {
	b.WriteString("        <DT><H3>" + htmlEscaper.Replace(name) + "</H3>\n")
	b.WriteString("        <DL><p>\n")
	for _, idx := range indices {
		bm := bookmarks[idx]
		fmt.Fprintf(b, "            <DT><A HREF=\"%s\" ADD_DATE=\"%d\">%s</A>\n",
			htmlEscaper.Replace(bm.URL), addDate(&bm), htmlEscaper.Replace(bm.Name))
	}
	b.WriteString("        </DL><p>\n")
}

// addDate picks the ADD_DATE seconds value for a bookmark: createdAt, then
// updatedAt, then now. Values above 10,000,000,000 can only be milliseconds
// and are scaled down.
func addDate(bm *models.Bookmark) int64 {
	var ts int64
	switch {
	case !bm.CreatedAt.IsZero():
		ts = bm.CreatedAt.Unix()
	case !bm.UpdatedAt.IsZero():
		ts = bm.UpdatedAt.Unix()
	default:
		ts = time.Now().Unix()
	}
	if ts > 10_000_000_000 {
		ts = ts / 1000
	}
	return ts
}
