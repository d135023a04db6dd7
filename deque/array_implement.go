package deque

type ArrDeque[T any] struct {
	arr   []T
	start int // 头部元素下标
	size  int // 元素个数
}

var _ Deque[int] = (*ArrDeque[int])(nil)

// 工厂方法, 容量即为最多保存的元素个数, 至少为 1
func NewArrDeque[T any](capacity int) *ArrDeque[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &ArrDeque[T]{arr: make([]T, capacity)}
}

func (ad *ArrDeque[T]) Size() int {
	return ad.size
}

func (ad *ArrDeque[T]) Capacity() int {
	return len(ad.arr)
}

func (ad *ArrDeque[T]) index(i int) int {
	return (ad.start + i) % len(ad.arr)
}

func (ad *ArrDeque[T]) Get(i int) T {
	if i < 0 || i >= ad.size {
		panic("index out of length")
	}
	return ad.arr[ad.index(i)]
}

func (ad *ArrDeque[T]) Traverse(f func(i int, item T)) {
	for i := 0; i < ad.size; i++ {
		f(i, ad.arr[ad.index(i)])
	}
}

func (ad *ArrDeque[T]) RemoveLast() T {
	if ad.IsEmpty() {
		panic("deque is empty")
	}
	var zero T
	i := ad.index(ad.size - 1)
	item := ad.arr[i]
	ad.arr[i] = zero
	ad.size--
	return item
}

func (ad *ArrDeque[T]) AddFirst(item T) {
	if ad.IsFull() {
		panic("deque is full")
	}
	ad.start = (ad.start - 1 + len(ad.arr)) % len(ad.arr)
	ad.arr[ad.start] = item
	ad.size++
}

// PushFirst adds item at the head, evicting the tail when the deque is full.
// It reports whether an element was evicted.
func (ad *ArrDeque[T]) PushFirst(item T) bool {
	evicted := false
	if ad.IsFull() {
		ad.RemoveLast()
		evicted = true
	}
	ad.AddFirst(item)
	return evicted
}

func (ad *ArrDeque[T]) IsFull() bool {
	return ad.size == len(ad.arr)
}

func (ad *ArrDeque[T]) IsEmpty() bool {
	return ad.size == 0
}
