// Package rain provides the falling-drop model behind the terminal rain effect.
//
// The package is terminal independent:
//
//   - [Drop]: one falling glyph with position, speed and color
//   - [Collection]: growable, length/capacity tracked storage of drops
//   - [TargetCount]: drop count and slow mode derived from terminal size
//
// # Example
//
//	rng := rand.New(rand.NewSource(1))
//	count, slow := rain.TargetCount(w, h)
//	c, _ := rain.NewCollection(count)
//	_ = c.ResizeTo(count, func() rain.Drop { return rain.NewDrop(w, h, slow, rng) })
//
// # Thread Safety
//
// Collection is NOT thread-safe. It has a single owner, the simulation driver.
package rain
