package container

import (
	"strings"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/lists"
	"github.com/emirpasic/gods/utils"
)

var (
	_ lists.List                          = (*VoidList)(nil)
	_ containers.ReverseIteratorWithIndex = (*VoidListIterator)(nil)
)

// VoidList 以 gods lists.List 接口访问 VoidVector
// 与原数组共享数据 非 Void 的值不是合法元素 会被忽略
type VoidList struct {
	vector *VoidVector
}

// List 获取 gods 列表视图
func (v *VoidVector) List() *VoidList {
	return &VoidList{vector: v}
}

// Get 带边界检查的访问
func (l *VoidList) Get(index int) (interface{}, bool) {
	if !l.withinRange(index) {
		return nil, false
	}
	return Void{}, true
}

// Remove 移除下标处的元素
func (l *VoidList) Remove(index int) {
	if !l.withinRange(index) {
		return
	}
	l.vector.PopBack()
}

// Add 追加元素
func (l *VoidList) Add(values ...interface{}) {
	for _, value := range values {
		if _, ok := value.(Void); ok {
			l.vector.PushBack(Void{})
		}
	}
}

// Contains 判断是否包含所有给定值
func (l *VoidList) Contains(values ...interface{}) bool {
	for _, value := range values {
		if _, ok := value.(Void); !ok || l.vector.Empty() {
			return false
		}
	}
	return true
}

// Sort 元素全部相等 排序不改变任何状态
func (l *VoidList) Sort(utils.Comparator) {}

// Swap 交换两个元素 同上
func (l *VoidList) Swap(int, int) {}

// Insert 在下标处插入元素 下标越界时忽略
func (l *VoidList) Insert(index int, values ...interface{}) {
	if index < 0 || index > l.vector.size {
		return
	}
	l.Add(values...)
}

// Set 设置下标处的值 下标等于长度时追加
func (l *VoidList) Set(index int, value interface{}) {
	if index == l.vector.size {
		l.Add(value)
	}
}

// Empty 判断列表是否为空
func (l *VoidList) Empty() bool {
	return l.vector.Empty()
}

// Size 获取列表长度
func (l *VoidList) Size() int {
	return l.vector.Size()
}

// Clear 清空列表
func (l *VoidList) Clear() {
	l.vector.Clear()
}

// Values 获取所有元素
func (l *VoidList) Values() []interface{} {
	values := make([]interface{}, l.vector.size)
	for i := range values {
		values[i] = Void{}
	}
	return values
}

// String 文本表示
func (l *VoidList) String() string {
	var b strings.Builder
	b.WriteString("VoidList\n")
	for i := 0; i < l.vector.size; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Void{}.String())
	}
	return b.String()
}

// Iterator 获取有状态迭代器 初始位置在首元素之前
func (l *VoidList) Iterator() *VoidListIterator {
	return &VoidListIterator{list: l, index: -1}
}

func (l *VoidList) withinRange(index int) bool {
	return index >= 0 && index < l.vector.size
}

// VoidListIterator gods 风格的有状态迭代器
type VoidListIterator struct {
	list  *VoidList
	index int
}

// Next 前移一位 返回是否仍在范围内
func (it *VoidListIterator) Next() bool {
	if it.index < it.list.vector.size {
		it.index++
	}
	return it.list.withinRange(it.index)
}

// Prev 后退一位 返回是否仍在范围内
func (it *VoidListIterator) Prev() bool {
	if it.index >= 0 {
		it.index--
	}
	return it.list.withinRange(it.index)
}

// Value 当前元素
func (it *VoidListIterator) Value() interface{} {
	return Void{}
}

// Index 当前下标
func (it *VoidListIterator) Index() int {
	return it.index
}

// Begin 重置到首元素之前
func (it *VoidListIterator) Begin() {
	it.index = -1
}

// End 移动到尾元素之后
func (it *VoidListIterator) End() {
	it.index = it.list.vector.size
}

// First 移动到首元素
func (it *VoidListIterator) First() bool {
	it.Begin()
	return it.Next()
}

// Last 移动到尾元素
func (it *VoidListIterator) Last() bool {
	it.End()
	return it.Prev()
}

// NextTo 前移到第一个满足 f 的位置
func (it *VoidListIterator) NextTo(f func(index int, value interface{}) bool) bool {
	for it.Next() {
		if f(it.index, Void{}) {
			return true
		}
	}
	return false
}

// PrevTo 后退到第一个满足 f 的位置
func (it *VoidListIterator) PrevTo(f func(index int, value interface{}) bool) bool {
	for it.Prev() {
		if f(it.index, Void{}) {
			return true
		}
	}
	return false
}
