package nonsend

// Command is a single deferred unit of work against the world. A queued
// command runs exactly once, during Commands.Apply, on the goroutine that
// applies the buffer.
type Command func(*World)

// Commands is an ordered buffer of deferred world mutations. The zero value
// is ready to use. Commands may be queued from any goroutine the caller
// synchronizes itself; applying the buffer must happen on the world's owning
// goroutine if any queued command touches non-send state.
type Commands struct {
	queue []Command
}

// NewCommands creates an empty command buffer.
func NewCommands() *Commands {
	return &Commands{}
}

// Add appends a command to the buffer. Nil commands are ignored.
func (c *Commands) Add(cmd Command) {
	if cmd == nil {
		return
	}
	c.queue = append(c.queue, cmd)
}

// Len reports how many commands are queued.
func (c *Commands) Len() int {
	return len(c.queue)
}

// Apply drains the buffer and runs every queued command against w, in the
// order they were added. Commands queued while Apply is running are held for
// the next Apply. Applying an empty buffer is a no-op. A panicking command
// propagates to the caller; the commands queued after it are lost with the
// drained batch.
func (c *Commands) Apply(w *World) {
	queue := c.queue
	c.queue = nil
	for _, cmd := range queue {
		cmd(w)
	}
}

// Despawn queues the removal of an entity.
func (c *Commands) Despawn(e Entity) {
	c.Add(func(w *World) {
		w.RemoveEntity(e)
	})
}

// Spawn queues the creation of an entity. The init function, if not nil, runs
// right after creation with the new entity, typically to attach components.
func Spawn(init func(*World, Entity)) Command {
	return func(w *World) {
		e := w.CreateEntity()
		if init != nil {
			init(w, e)
		}
	}
}

// InsertNonSendResource creates a Command that inserts a non-send resource
// with a value produced by factory. The factory does not run at the call
// site: it runs when the buffer is applied, on the world's owning goroutine,
// exactly once. The closure itself may therefore be built anywhere, while its
// result never leaves the owning goroutine.
//
// If commands inserting the same type are queued more than once before an
// Apply, the last queued value wins.
func InsertNonSendResource[T any](factory func() *T) Command {
	return func(w *World) {
		InsertNonSend(w, factory())
	}
}

// InitNonSendResource creates a Command that ensures a non-send resource of
// type T is present, constructing it via InitNonSend only if absent.
func InitNonSendResource[T any]() Command {
	return func(w *World) {
		InitNonSend[T](w)
	}
}

// RemoveNonSendResource creates a Command that removes the non-send resource
// of type T, if present.
func RemoveNonSendResource[T any]() Command {
	return func(w *World) {
		RemoveNonSend[T](w)
	}
}

// InsertResourceCommand creates a Command that inserts res into the world's
// plain resource table, replacing any prior value of the same type.
func InsertResourceCommand[T any](res *T) Command {
	return func(w *World) {
		InsertResource(w, res)
	}
}

// RemoveResourceCommand creates a Command that removes the plain resource of
// type T, if present.
func RemoveResourceCommand[T any]() Command {
	return func(w *World) {
		RemoveResource[T](w)
	}
}

// SendEvent creates a Command that publishes ev on the world's event bus when
// the buffer is applied.
func SendEvent[T any](ev T) Command {
	return func(w *World) {
		Publish(w.events, ev)
	}
}
