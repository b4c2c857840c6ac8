// Package services provides domain services that coordinate several
// aggregates of the catering system.
//
// The package includes:
//   - ResourcePool: finds, reserves and releases drivers and vehicles
//   - OrderQueue: assigns and compacts kitchen queue positions and computes the order being served
//   - DeliveryDispatcher: couples an order's delivery transitions with the resource pool and the queue
//
// The services are stateless. They mutate the aggregates handed to them and
// leave persistence to the caller's unit of work, which makes every
// multi-step operation all-or-nothing.
package services
