// Package app provides application bootstrap for collabkit.
//
// NewApplication performs the whole composition sequence and returns an
// Application whose registry, dispatcher and dependency report are ready to
// use:
//
//  1. Logging is initialized from the debug/silent flags, then refined by the
//     configuration's logging section.
//  2. Configuration is loaded from --config-path (default ~/.config/collabkit)
//     and validated.
//  3. Soft feature dependencies are checked and reported as warnings.
//  4. The enabled features plus the configured extra dependencies are
//     resolved. A cycle or a missing dependency aborts bootstrap.
//  5. Services are registered wave by wave and adapters are created and
//     configured. Configure failures leave the service registered but
//     unavailable, and are listed in Services.Warnings.
//  6. Registry and dispatcher are published through the api locator.
//
// Example:
//
//	application, err := app.NewApplication(ctx, app.NewConfig(true, false, "/etc/collabkit"))
//	if err != nil {
//	    log.Fatalf("Bootstrap failed: %v", err)
//	}
//	for _, name := range application.StartupOrder() {
//	    fmt.Println(name)
//	}
package app
