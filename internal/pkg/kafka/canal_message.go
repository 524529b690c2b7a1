package kafka

import (
	"strconv"
)

// CanalMessage Canal 推送到 Kafka 的行变更消息
type CanalMessage struct {
	ID       int64    `json:"id"`
	Database string   `json:"database"`
	Table    string   `json:"table"`
	PKNames  []string `json:"pkNames"`
	IsDDL    bool     `json:"isDdl"`
	Type     string   `json:"type"`
	ES       int64    `json:"es"`
	TS       int64    `json:"ts"`

	// Data 变更后的行
	Data []map[string]interface{} `json:"data"`
	// Old UPDATE 时变更前的字段
	Old []map[string]interface{} `json:"old"`
}

// Uint64Column 读取所有行（包括变更前）中某一列的取值，无法解析的值会被忽略
func (m *CanalMessage) Uint64Column(column string) []uint64 {
	ids := make([]uint64, 0, len(m.Data))
	for _, rows := range [][]map[string]interface{}{m.Data, m.Old} {
		for _, row := range rows {
			if id, ok := toUint64(row[column]); ok {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// toUint64 Canal 中的数值列以字符串形式给出
func toUint64(val interface{}) (uint64, bool) {
	switch v := val.(type) {
	case string:
		id, err := strconv.ParseUint(v, 10, 64)
		return id, err == nil
	case float64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
