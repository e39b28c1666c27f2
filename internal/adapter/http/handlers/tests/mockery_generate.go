package tests

// Handler tests use the hand-written taskServiceMock in tasks_test.go. An
// expecter-style mock of the same port can be generated instead with:
//
//	go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name TaskService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_service_mock.go --with-expecter
