package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// BookmarkServiceInterface defines the interface for bookmark business logic
type BookmarkServiceInterface interface {
	Insert(userID int64, req *CreateBookmarkRequest) (*BookmarkResponse, error)
	Get(userID, id int64) (*BookmarkResponse, error)
	Update(userID, id int64, req *UpdateBookmarkRequest) (*BookmarkResponse, error)
	Delete(userID, id int64) error
	DeleteMany(userID int64, ids []int64) (int64, error)
	Sort(userID int64, orders []OrderUpdate) error
	ReconcileSort(userID int64, req *ReconcileSortRequest) ([]OrderUpdate, error)
	FindMany(userID int64, query *BookmarkQuery) (*BookmarkListResponse, error)
	Random(userID int64, limit int) ([]BookmarkResponse, error)
	Recent(userID int64, limit int) ([]BookmarkResponse, error)
	Search(userID int64, keyword string, limit int) ([]BookmarkResponse, error)
}

// TagServiceInterface defines the interface for tag business logic
type TagServiceInterface interface {
	List(userID int64) ([]TagResponse, error)
	Create(userID int64, req *CreateTagRequest) (*TagResponse, error)
	Update(userID, id int64, req *UpdateTagRequest) (*TagResponse, error)
	Delete(userID, id int64) error
}

// ExportServiceInterface defines the interface for bookmark export
type ExportServiceInterface interface {
	ExportHTML(userID int64) (string, error)
}
