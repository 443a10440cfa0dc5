package collections_test

import (
	"reflect"
	"slices"

	"github.com/mevansam/textparsers/data/collections"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("collections", func() {

	It("builds containers through reflection", func() {

		for _, t := range []reflect.Type{
			reflect.TypeFor[collections.ReadOnlyList[int]](),
			reflect.TypeFor[collections.ObservableList[int]](),
			reflect.TypeFor[collections.Set[int]](),
			reflect.TypeFor[collections.SortedSet[int]](),
			reflect.TypeFor[collections.Stack[int]](),
			reflect.TypeFor[collections.Queue[int]](),
			reflect.TypeFor[collections.LinkedList[int]](),
			reflect.TypeFor[collections.LeanCollection[int]](),
		} {
			Expect(collections.IsContainer(t)).To(BeTrue(), t.String())

			c := collections.New(t, []int{3, 1, 2})
			Expect(reflect.TypeOf(c)).To(Equal(t))
			Expect(c.ElementType()).To(Equal(reflect.TypeFor[int]()))
			Expect(c.Len()).To(Equal(3))
			Expect(c.IsNil()).To(BeFalse())

			empty := collections.New(t, []int{})
			Expect(empty.Len()).To(Equal(0))
			Expect(empty.IsNil()).To(BeFalse())
		}
		Expect(collections.IsContainer(reflect.TypeFor[[]int]())).To(BeFalse())
		Expect(collections.IsContainer(reflect.TypeFor[struct{ collections.ReadOnlyList[int] }]())).To(BeFalse())
	})

	It("distinguishes absent from empty", func() {
		Expect(collections.Set[int]{}.IsNil()).To(BeTrue())
		Expect(collections.Stack[int]{}.IsNil()).To(BeTrue())
		Expect(collections.LinkedList[int]{}.IsNil()).To(BeTrue())
		Expect(collections.LeanCollection[int]{}.IsNil()).To(BeFalse())
		Expect(collections.NewSortedSet[int]().IsNil()).To(BeFalse())
	})

	It("only modifies collections made by their constructors", func() {

		Expect(func() { collections.Stack[int]{}.Push(1) }).To(Panic())
		Expect(func() { collections.Queue[int]{}.Enqueue(1) }).To(Panic())
		Expect(func() { collections.ObservableList[int]{}.Add(1) }).To(Panic())
		Expect(func() { collections.ObservableList[int]{}.Subscribe(func(collections.Change[int]) {}) }).To(Panic())

		_, ok := collections.Stack[int]{}.Pop()
		Expect(ok).To(BeFalse())
		_, ok = collections.Queue[int]{}.Dequeue()
		Expect(ok).To(BeFalse())

		s := collections.NewStack[int]()
		s.Push(1)
		q := collections.NewQueue[int]()
		q.Enqueue(2)
		l := collections.NewObservableList[int]()
		l.Subscribe(func(collections.Change[int]) {})
		l.Add(3)
		Expect([]int{s.Len(), q.Len(), l.Len()}).To(Equal([]int{1, 1, 1}))
	})

	It("keeps sets unique", func() {

		s := collections.NewSet("b", "a", "b")
		Expect(s.Items()).To(Equal([]string{"b", "a"}))
		Expect(s.Add("a")).To(BeFalse())
		Expect(s.Add("c")).To(BeTrue())
		Expect(s.Contains("c")).To(BeTrue())

		ss := collections.NewSortedSet(5, 1, 3, 1)
		Expect(ss.Items()).To(Equal([]int{1, 3, 5}))
		Expect(ss.Contains(3)).To(BeTrue())
		max, ok := ss.Max()
		Expect(ok).To(BeTrue())
		Expect(max).To(Equal(5))
	})

	It("enumerates stacks bottom to top", func() {

		s := collections.NewStack(1, 2)
		s.Push(3)
		Expect(s.Items()).To(Equal([]int{1, 2, 3}))
		top, ok := s.Pop()
		Expect(ok).To(BeTrue())
		Expect(top).To(Equal(3))

		rebuilt := collections.New(reflect.TypeOf(s), s.Items()).(collections.Stack[int])
		top, _ = rebuilt.Peek()
		Expect(top).To(Equal(2))
	})

	It("dequeues in order", func() {

		q := collections.NewQueue("a")
		q.Enqueue("b")
		first, _ := q.Dequeue()
		Expect(first).To(Equal("a"))
		Expect(q.Items()).To(Equal([]string{"b"}))
	})

	It("keeps linked list order", func() {

		ll := collections.NewLinkedList(2, 3)
		ll.PushFront(1)
		Expect(slices.Collect(ll.All())).To(Equal([]int{1, 2, 3}))
		Expect(ll.Items()).To(Equal([]int{1, 2, 3}))
	})

	It("notifies observers", func() {

		var changes []collections.Change[string]

		l := collections.NewObservableList[string]()
		l.Subscribe(func(c collections.Change[string]) {
			changes = append(changes, c)
		})
		l.Add("a")
		l.Add("b")
		l.Set(0, "z")
		l.RemoveAt(1)
		Expect(l.Items()).To(Equal([]string{"z"}))
		Expect(changes).To(HaveLen(4))
		Expect(changes[2]).To(Equal(collections.Change[string]{Type: collections.ItemReplaced, Index: 0, Item: "z"}))
		Expect(changes[3].Type).To(Equal(collections.ItemRemoved))
	})

	It("spills lean collections beyond five items", func() {

		lc := collections.NewLeanCollection(1, 2, 3, 4, 5)
		Expect(lc.Inline()).To(BeTrue())

		grown := lc.With(6).With(7)
		Expect(grown.Inline()).To(BeFalse())
		Expect(grown.Items()).To(Equal([]int{1, 2, 3, 4, 5, 6, 7}))
		Expect(grown.At(6)).To(Equal(7))
		Expect(lc.Len()).To(Equal(5))

		var empty collections.LeanCollection[int]
		Expect(empty.Items()).To(Equal([]int{}))
	})

	It("describes key value pairs", func() {

		kv := collections.NewKeyValue(1, "One")
		k, v := kv.KeyValueTypes()
		Expect(k).To(Equal(reflect.TypeFor[int]()))
		Expect(v).To(Equal(reflect.TypeFor[string]()))
		Expect(reflect.TypeOf(kv).Implements(collections.PairType)).To(BeTrue())
		Expect(collections.IsPair(reflect.TypeOf(kv))).To(BeTrue())
		Expect(collections.IsPair(reflect.TypeFor[struct{ collections.KeyValue[int, string] }]())).To(BeFalse())
		Expect(kv.String()).To(Equal("1=One"))
	})
})
