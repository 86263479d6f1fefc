package forms

type KindParam struct {
	Kind string `uri:"kind" binding:"required,recordKind"`
}

type IDParam struct {
	Kind string `uri:"kind" binding:"required,recordKind"`
	ID   string `uri:"id" binding:"required,len=24,hexadecimal"`
}

type ListQuery struct {
	Skip  int64 `form:"skip" binding:"omitempty,min=0"`
	Limit int64 `form:"limit,default=50" binding:"min=1,max=200"`
}

type SearchQuery struct {
	Q    string `form:"q" binding:"required,min=1,max=100"`
	Kind string `form:"kind" binding:"omitempty,recordKind"`
}

type ExportForm struct {
	Key string `json:"key" form:"key" binding:"omitempty,max=200"`
}
