package container

import "cmp"

// VoidIterator VoidVector 的随机访问迭代器
// 只记录偏移量 不持有所属数组 不同数组的迭代器混用结果未定义
type VoidIterator struct {
	offset int
}

// Value 解引用 与偏移量无关
func (it VoidIterator) Value() Void {
	return Void{}
}

// Offset 获取偏移量
func (it VoidIterator) Offset() int {
	return it.offset
}

// Next 前移一位
func (it *VoidIterator) Next() Void {
	it.offset++
	return Void{}
}

// Prev 后退一位
func (it *VoidIterator) Prev() Void {
	it.offset--
	return Void{}
}

// Add 返回前移 n 位的迭代器
func (it VoidIterator) Add(n int) VoidIterator {
	return VoidIterator{offset: it.offset + n}
}

// Sub 返回后退 n 位的迭代器
func (it VoidIterator) Sub(n int) VoidIterator {
	return VoidIterator{offset: it.offset - n}
}

// Distance 两个迭代器的距离 it - other
func (it VoidIterator) Distance(other VoidIterator) int {
	return it.offset - other.offset
}

// Advance 原地前移 n 位
func (it *VoidIterator) Advance(n int) *VoidIterator {
	it.offset += n
	return it
}

// Retreat 原地后退 n 位
func (it *VoidIterator) Retreat(n int) *VoidIterator {
	it.offset -= n
	return it
}

// Compare 按偏移量比较
func (it VoidIterator) Compare(other VoidIterator) int {
	return cmp.Compare(it.offset, other.offset)
}

// Less 判断偏移量是否更小
func (it VoidIterator) Less(other VoidIterator) bool {
	return it.offset < other.offset
}
