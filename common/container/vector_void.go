package container

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"
	"math"
	"strconv"
)

// VoidVector Void 元素的动态数组 线程不安全
// 元素没有任何状态 所以只记录元素个数
// 零值即为可用的空数组
type VoidVector struct {
	size int
}

// NewVoidVector 创建空数组
func NewVoidVector() *VoidVector {
	return &VoidVector{}
}

// NewVoidVectorSize 创建包含 n 个元素的数组
func NewVoidVectorSize(n int) *VoidVector {
	mustNonNegative("NewVoidVectorSize", n)
	return &VoidVector{size: n}
}

// NewVoidVectorFill 创建包含 n 个 val 的数组
func NewVoidVectorFill(n int, _ Void) *VoidVector {
	return NewVoidVectorSize(n)
}

// Clone 复制数组 副本与原数组相互独立
func (v *VoidVector) Clone() *VoidVector {
	return &VoidVector{size: v.size}
}

// Move 转移数组内容到新数组 原数组被清空
func (v *VoidVector) Move() *VoidVector {
	moved := &VoidVector{size: v.size}
	v.Clear()
	return moved
}

// At 带边界检查的访问
func (v *VoidVector) At(idx int) (Void, error) {
	if idx < 0 || idx >= v.size {
		return Void{}, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, idx, v.size)
	}
	return Void{}, nil
}

// Index 不做边界检查的访问
func (v *VoidVector) Index(int) Void {
	return Void{}
}

// Front 首元素 空数组上调用无意义
func (v *VoidVector) Front() Void {
	return Void{}
}

// Back 尾元素 空数组上调用无意义
func (v *VoidVector) Back() Void {
	return Void{}
}

// Begin 指向首元素的迭代器
func (v *VoidVector) Begin() VoidIterator {
	return VoidIterator{offset: 0}
}

// End 指向尾后位置的迭代器
func (v *VoidVector) End() VoidIterator {
	return VoidIterator{offset: v.size}
}

// All 按下标顺序遍历
func (v *VoidVector) All() iter.Seq2[int, Void] {
	return func(yield func(int, Void) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, Void{}) {
				return
			}
		}
	}
}

// Values 遍历元素
func (v *VoidVector) Values() iter.Seq[Void] {
	return func(yield func(Void) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(Void{}) {
				return
			}
		}
	}
}

// Backward 逆序遍历
func (v *VoidVector) Backward() iter.Seq2[int, Void] {
	return func(yield func(int, Void) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, Void{}) {
				return
			}
		}
	}
}

// Empty 判断数组是否为空
func (v *VoidVector) Empty() bool {
	return v.size == 0
}

// Size 获取数组长度
func (v *VoidVector) Size() int {
	return v.size
}

// MaxSize 可表示的最大长度
func (v *VoidVector) MaxSize() int {
	return math.MaxInt
}

// Capacity 容量 始终等于长度
func (v *VoidVector) Capacity() int {
	return v.size
}

// Reserve 预留空间 无需分配
func (v *VoidVector) Reserve(int) {}

// ShrinkToFit 释放多余空间 无需处理
func (v *VoidVector) ShrinkToFit() {}

// Value 获取数组数据
// Void 不占空间 返回的切片不会分配元素内存
func (v *VoidVector) Value() []Void {
	return make([]Void, v.size)
}

// Clear 清空数组
func (v *VoidVector) Clear() {
	v.size = 0
}

// PushBack 追加元素
func (v *VoidVector) PushBack(Void) {
	v.mustBelowMax("PushBack")
	v.size++
}

// EmplaceBack 追加一个元素并返回该元素 参数被忽略
func (v *VoidVector) EmplaceBack(...Void) Void {
	v.mustBelowMax("EmplaceBack")
	v.size++
	return Void{}
}

// PopBack 移除尾元素 数组不能为空
func (v *VoidVector) PopBack() {
	if v.size == 0 {
		slog.Error("[VoidVector] PopBack on empty vector")
		panic("container: PopBack on empty VoidVector")
	}
	v.size--
}

// Resize 修改长度 扩容与缩容没有区别
func (v *VoidVector) Resize(n int) {
	mustNonNegative("Resize", n)
	v.size = n
}

// ResizeFill 修改长度 填充值被忽略
func (v *VoidVector) ResizeFill(n int, _ Void) {
	v.Resize(n)
}

// Swap 交换两个数组的内容
func (v *VoidVector) Swap(other *VoidVector) {
	v.size, other.size = other.size, v.size
}

// Equal 判断两个数组是否相等
func (v *VoidVector) Equal(other *VoidVector) bool {
	return v.size == other.size
}

// Compare 按字典序比较 元素全部相等时只比较长度
func (v *VoidVector) Compare(other *VoidVector) int {
	return cmp.Compare(v.size, other.size)
}

// String 文本表示
func (v *VoidVector) String() string {
	return "VoidVector[" + strconv.Itoa(v.size) + "]"
}

// LogValue 实现 slog.LogValuer
func (v *VoidVector) LogValue() slog.Value {
	return slog.GroupValue(slog.Int("size", v.size), slog.Int("capacity", v.Capacity()))
}

func mustNonNegative(op string, n int) {
	if n < 0 {
		slog.Error("[VoidVector] negative size", slog.String("op", op), slog.Int("size", n))
		panic(fmt.Sprintf("container: %s with negative size %d", op, n))
	}
}

func (v *VoidVector) mustBelowMax(op string) {
	if v.size == math.MaxInt {
		slog.Error("[VoidVector] size overflow", slog.String("op", op), slog.Int("size", v.size))
		panic(fmt.Sprintf("container: %s beyond max size %d", op, math.MaxInt))
	}
}
