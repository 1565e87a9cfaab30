package container

// Void 无状态元素 所有实例相等且不占空间
type Void struct{}

// Compare 比较两个元素 任意两个 Void 都相等
func (Void) Compare(Void) int {
	return 0
}

// String 元素的文本表示
func (Void) String() string {
	return "{}"
}

// Container 容器接口
type Container[T any] interface {
	Empty() bool
	Size() int
	Clear()
	Value() []T
}

var _ Container[Void] = (*VoidVector)(nil)
