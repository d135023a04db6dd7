/**
 * 固定容量的双端队列, 元素存放在一个环形数组中
 * 用于保存最近的计算结果, 新结果从头部加入, 满了以后从尾部淘汰
 */

package deque

type Deque[T any] interface {
	// 队列的长度
	Size() int

	// 获取队列中对应下标的元素, 0 为头部
	Get(i int) T

	// 正向遍历, 从头部到尾部
	Traverse(f func(i int, item T))

	// 在队列结尾删除一个元素
	RemoveLast() T

	// 在队列头部增加一个元素
	AddFirst(item T)

	// 在队列头部增加一个元素, 满了先淘汰尾部元素, 返回是否淘汰
	PushFirst(item T) bool

	IsFull() bool

	IsEmpty() bool
}
