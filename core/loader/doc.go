// Package loader provides the plugin-like feature loading system.
//
// It allows the application to register and initialize features (modules)
// dynamically. Each feature implements the Feature interface, which defines
// its lifecycle hooks and route registration logic. The Manager struct holds
// the registry, and LoadAll wires every enabled feature into the Fiber app.
//
// This architecture keeps the schedule and search features developed and
// tested in isolation from the server assembly.
package loader
