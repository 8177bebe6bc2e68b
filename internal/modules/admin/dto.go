package admin

// Pointer fields distinguish "absent" from zero values under gin's required
// binding (deleted:false and from:0 are legitimate inputs).

type SetDeletedRequest struct {
	Deleted *bool `json:"deleted" binding:"required"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new processing completed hold"`
}

type ReorderRequest struct {
	From *int `json:"from" binding:"required"`
	To   *int `json:"to" binding:"required"`
}

type MediaResponse struct {
	URL string `json:"url"`
}
