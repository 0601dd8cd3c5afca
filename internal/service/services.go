package service

// Services groups the core operations exposed to the transport layer
type Services struct {
	Auth      *Authenticator
	Employees *EmployeeService
	Leaves    *LeaveService
	Dashboard *DashboardService
}

// New wires every service over the given stores
func New(users UserStore, leaves LeaveStore, hasher PasswordHasher, sessions SessionIssuer) (*Services, error) {
	auth, err := NewAuthenticator(users, hasher, sessions)
	if err != nil {
		return nil, err
	}
	return &Services{
		Auth:      auth,
		Employees: NewEmployeeService(users, hasher, sessions),
		Leaves:    NewLeaveService(leaves),
		Dashboard: NewDashboardService(users, leaves),
	}, nil
}
