package list

import (
	"fmt"
	"sync"
)

// ArrayList es una cola genérica segura para uso concurrente.
type ArrayList[T any] struct {
	mu    sync.RWMutex
	items []T
}

// NewArrayList crea una lista con los elementos dados, en el mismo orden.
//
// Ejemplo:
//
//	func main() {
//		accesos := list.NewArrayList(models.Access{PID: 1, Address: 0})
//		fmt.Println(accesos.Size()) //output: 1
//	}
func NewArrayList[T any](items ...T) *ArrayList[T] {
	list := &ArrayList[T]{items: make([]T, 0, len(items))}
	list.items = append(list.items, items...)
	return list
}

// Dequeue elimina y devuelve el primer elemento de la cola.
// En caso de que la lista se encuentre vacía retorna el valor "cero" del tipo T y un error.
//
// Ejemplo:
//
//	func main() {
//		numbers := list.NewArrayList(10, 20, 30)
//		value, _ := numbers.Dequeue()
//		fmt.Println("Valor: ", value) //output: 10
//	}
func (list *ArrayList[T]) Dequeue() (T, error) {
	list.mu.Lock()
	defer list.mu.Unlock()

	if len(list.items) == 0 {
		var zero T
		return zero, fmt.Errorf("list is empty")
	}
	value := list.items[0]
	list.items = list.items[1:]
	return value, nil
}

func (list *ArrayList[T]) IsEmpty() bool {
	return list.Size() == 0
}

// Size devuelve el tamaño de la lista.
func (list *ArrayList[T]) Size() int {
	list.mu.RLock()
	defer list.mu.RUnlock()

	return len(list.items)
}
