package nonsend_test

import (
	"testing"

	"github.com/BD103/nonsend"
)

// --- Test Components ---
type Position struct{ X, Y float32 }
type Velocity struct{ VX, VY float32 }
type Health struct{ Current, Max int }

// go test -run ^TestCreateEntity$ . -count 1
func TestCreateEntity(t *testing.T) {
	world := nonsend.NewWorld(8)
	e1 := world.CreateEntity()
	e2 := world.CreateEntity()

	if e1.ID != 0 {
		t.Errorf("Expected first entity ID to be 0, got %d", e1.ID)
	}
	if e1.Version != 1 {
		t.Errorf("Expected first entity version to be 1, got %d", e1.Version)
	}
	if e2.ID != 1 {
		t.Errorf("Expected second entity ID to be 1, got %d", e2.ID)
	}
	if world.EntityCount() != 2 {
		t.Errorf("Expected entity count 2, got %d", world.EntityCount())
	}
}

// go test -run ^TestCreateEntities$ . -count 1
func TestCreateEntities(t *testing.T) {
	world := nonsend.NewWorld(4)
	ents := world.CreateEntities(10)
	if len(ents) != 10 {
		t.Fatalf("Expected 10 entities, got %d", len(ents))
	}
	for _, e := range ents {
		if !world.IsValid(e) {
			t.Errorf("Expected entity %v to be valid", e)
		}
	}
	if world.EntityCount() != 10 {
		t.Errorf("Expected entity count 10, got %d", world.EntityCount())
	}
	if world.CreateEntities(0) != nil {
		t.Error("Expected nil for zero count")
	}
}

// go test -run ^TestRemoveEntity$ . -count 1
func TestRemoveEntity(t *testing.T) {
	world := nonsend.NewWorld(8)
	e := world.CreateEntity()
	nonsend.SetComponent(world, e, Position{X: 1})

	world.RemoveEntity(e)
	if world.IsValid(e) {
		t.Error("Expected entity to be invalid after removal")
	}
	if world.EntityCount() != 0 {
		t.Errorf("Expected entity count 0, got %d", world.EntityCount())
	}
	// Removing again is a no-op.
	world.RemoveEntity(e)

	// The recycled ID must not resurrect the stale handle or its components.
	e2 := world.CreateEntity()
	if e2.ID != e.ID {
		t.Errorf("Expected recycled ID %d, got %d", e.ID, e2.ID)
	}
	if world.IsValid(e) {
		t.Error("Expected stale handle to stay invalid after ID reuse")
	}
	if _, ok := nonsend.GetComponent[Position](world, e2); ok {
		t.Error("Expected recycled entity to start without components")
	}
}

// go test -run ^TestWorldExpansion$ . -count 1
func TestWorldExpansion(t *testing.T) {
	world := nonsend.NewWorld(2)
	ents := world.CreateEntities(100)
	for _, e := range ents {
		if !world.IsValid(e) {
			t.Fatalf("Expected entity %v to be valid after expansion", e)
		}
	}
	if world.EntityCount() != 100 {
		t.Errorf("Expected entity count 100, got %d", world.EntityCount())
	}
}

// go test -run ^TestClearEntities$ . -count 1
func TestClearEntities(t *testing.T) {
	world := nonsend.NewWorld(8)
	ents := world.CreateEntities(5)
	nonsend.SetComponent(world, ents[0], Position{X: 1})
	nonsend.InsertResource(world, &Health{Current: 10, Max: 10})

	world.ClearEntities()

	if world.EntityCount() != 0 {
		t.Errorf("Expected entity count 0, got %d", world.EntityCount())
	}
	for _, e := range ents {
		if world.IsValid(e) {
			t.Errorf("Expected entity %v to be invalid after clear", e)
		}
	}
	// Resources survive a ClearEntities.
	if ok, _ := nonsend.HasResource[Health](world); !ok {
		t.Error("Expected resources to survive ClearEntities")
	}
}

// go test -run ^TestSetComponent$ . -count 1
func TestSetComponent(t *testing.T) {
	world := nonsend.NewWorld(8)
	e := world.CreateEntity()

	t.Run("AddNewComponent", func(t *testing.T) {
		ok := nonsend.SetComponent(world, e, Position{X: 100, Y: 200})
		if !ok {
			t.Fatal("SetComponent failed to add a new component")
		}
		p, ok := nonsend.GetComponent[Position](world, e)
		if !ok {
			t.Fatal("GetComponent failed after SetComponent added a component")
		}
		if p.X != 100 || p.Y != 200 {
			t.Errorf("Component data incorrect. Expected {100, 200}, got %+v", p)
		}
	})

	t.Run("UpdateExistingComponent", func(t *testing.T) {
		nonsend.SetComponent(world, e, Velocity{VX: 1, VY: 2})

		ok := nonsend.SetComponent(world, e, Position{X: 555, Y: 777})
		if !ok {
			t.Fatal("SetComponent failed to update an existing component")
		}
		p, _ := nonsend.GetComponent[Position](world, e)
		if p.X != 555 || p.Y != 777 {
			t.Errorf("Component data incorrect. Expected {555, 777}, got %+v", p)
		}

		// Verify other components are untouched
		v, ok := nonsend.GetComponent[Velocity](world, e)
		if !ok {
			t.Fatal("Velocity component was lost after updating Position")
		}
		if v.VX != 1 || v.VY != 2 {
			t.Errorf("Velocity component data was corrupted. Got %+v", v)
		}
	})

	t.Run("StalePointerWrites", func(t *testing.T) {
		p, _ := nonsend.GetComponent[Position](world, e)
		p.X = 9
		p2, _ := nonsend.GetComponent[Position](world, e)
		if p2.X != 9 {
			t.Errorf("Expected pointer writes to stick, got %+v", p2)
		}
	})

	t.Run("InvalidEntity", func(t *testing.T) {
		stale := nonsend.Entity{ID: 999, Version: 1}
		if nonsend.SetComponent(world, stale, Position{}) {
			t.Error("Expected SetComponent to fail for an invalid entity")
		}
	})
}

// go test -run ^TestRemoveComponent$ . -count 1
func TestRemoveComponent(t *testing.T) {
	world := nonsend.NewWorld(8)
	e := world.CreateEntity()
	nonsend.SetComponent(world, e, Position{X: 1})
	nonsend.SetComponent(world, e, Health{Current: 5, Max: 10})

	if !nonsend.RemoveComponent[Position](world, e) {
		t.Fatal("RemoveComponent failed for a valid entity")
	}
	if nonsend.HasComponent[Position](world, e) {
		t.Error("Expected Position to be removed")
	}
	if !nonsend.HasComponent[Health](world, e) {
		t.Error("Expected Health to survive removing Position")
	}
	// Removing an absent component is fine.
	if !nonsend.RemoveComponent[Position](world, e) {
		t.Error("Expected RemoveComponent of an absent component to succeed")
	}
}
