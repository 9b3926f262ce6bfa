package graphql

import (
	"crypto/md5"
	"encoding/hex"
)

// HeaderQueryHash — заголовок, по которому апстрим ключует свой кеш ответов.
const HeaderQueryHash = "x-graphql-query-hash"

// HeaderHash возвращает 128-битный MD5 от payload в нижнем hex (32 символа).
//
// Особенности:
//   - считается от итоговых байт тела, а не от логического запроса:
//     любой другой фильтр, страница или форматирование дают другой ключ;
//   - это ключ кеша, а не подпись, криптостойкость не требуется.
func HeaderHash(payload []byte) string {
	sum := md5.Sum(payload)
	return hex.EncodeToString(sum[:])
}
