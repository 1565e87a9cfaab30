package container

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"gopkg.in/yaml.v3"
)

// 序列化格式与等长的 []Void 完全一致
// Marshal 使用值接收者 结构体中的 VoidVector 值字段才能被编码

// MarshalJSON 编码为 JSON 数组
func (v VoidVector) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Value())
}

// UnmarshalJSON 从 JSON 数组解码 null 解码为空数组
func (v *VoidVector) UnmarshalJSON(data []byte) error {
	var items []Void
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	v.size = len(items)
	return nil
}

// MarshalYAML 编码为 YAML 序列
func (v VoidVector) MarshalYAML() (interface{}, error) {
	return v.Value(), nil
}

// UnmarshalYAML 从 YAML 序列解码
func (v *VoidVector) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: yaml node kind %d is not a sequence", ErrInvalidEncoding, value.Kind)
	}
	var items []Void
	if err := value.Decode(&items); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	v.size = len(items)
	return nil
}

// MarshalBSONValue 编码为 BSON 数组
func (v VoidVector) MarshalBSONValue() (byte, []byte, error) {
	typ, data, err := bson.MarshalValue(v.Value())
	return byte(typ), data, err
}

// UnmarshalBSONValue 从 BSON 数组解码 null 解码为空数组
func (v *VoidVector) UnmarshalBSONValue(typ byte, data []byte) error {
	raw := bson.RawValue{Type: bson.Type(typ), Value: data}
	if raw.Type == bson.TypeNull {
		v.size = 0
		return nil
	}
	if raw.Type != bson.TypeArray {
		return fmt.Errorf("%w: bson type %s is not an array", ErrInvalidEncoding, raw.Type)
	}
	var items []Void
	if err := raw.Unmarshal(&items); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	v.size = len(items)
	return nil
}
