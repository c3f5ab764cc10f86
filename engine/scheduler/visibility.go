package scheduler

// VisibilitySource subscribes a listener to surface visibility changes.
// Implementations call onChange with true when the surface becomes visible
// and false when it is hidden (for example a minimized window). The returned
// function removes the subscription and is safe to call once.
type VisibilitySource func(onChange func(visible bool)) (unsubscribe func())
