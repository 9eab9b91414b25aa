// internal/event/event.go
package event

import "slices"

// EventType — тип события
type EventType string

// Payload — данные события. Реализуют только типы из types.go.
type Payload interface {
	payload()
}

// Event — событие забега. Data равно nil, если у события нет данных.
type Event struct {
	Type EventType
	Data Payload
}

// Listener — подписчик на события. Слушатели сравниваются через ==,
// поэтому подписывать нужно указатели.
type Listener interface {
	OnEvent(e Event)
}

// Dispatcher рассылает события синхронно, в порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]Listener)}
}

// Subscribe добавляет подписчика; повторная подписка того же слушателя игнорируется.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	if slices.Contains(d.listeners[eventType], listener) {
		return
	}
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	list := d.listeners[eventType]
	if i := slices.Index(list, listener); i >= 0 {
		d.listeners[eventType] = slices.Delete(slices.Clone(list), i, i+1)
	}
}

// Dispatch вызывает подписчиков типа события. Подписки, измененные
// обработчиком, вступают в силу со следующего события.
func (d *Dispatcher) Dispatch(e Event) {
	for _, listener := range d.listeners[e.Type] {
		listener.OnEvent(e)
	}
}
