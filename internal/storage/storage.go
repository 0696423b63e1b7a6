package storage

// BlobStorage 定义媒体文件归档存储接口
// 媒体文件内容以数据库为准，归档副本是尽力而为的附加写入
type BlobStorage interface {
	Save(path string, body []byte, contentType string) (string, error)
}
