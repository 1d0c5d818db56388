package types

// 书签接口提示
const (
	MsgBookmarkAdded      = "添加成功!"
	MsgBookmarkDeleted    = "删除成功!"
	MsgChapterError       = "章节错误!"
	MsgBookmarkDelFailure = "无法删除此书签!"
)

