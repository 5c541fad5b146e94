package permission

import (
	"context"
	"fmt"

	"norte/internal/domain/permission"
	"norte/internal/domain/user"
	"norte/internal/shared/constants"
	"norte/internal/shared/logger"
)

const superAdminRole = "Super Admin"

type catalogEntry struct {
	name        string
	resource    string
	action      string
	category    string
	description string
}

// permissionCatalog is the full grantable surface. Seeding is idempotent;
// existing rows are left untouched.
var permissionCatalog = []catalogEntry{
	{"users.index", "users", "index", "Usuarios", "Ver listado y detalles de usuarios"},
	{"users.create", "users", "create", "Usuarios", "Registrar nuevos usuarios y empleados"},
	{"users.edit", "users", "edit", "Usuarios", "Editar información de usuarios existentes"},
	{"users.delete", "users", "delete", "Usuarios", "Eliminar usuarios del sistema"},
	{"users.toggle-status", "users", "toggle-status", "Usuarios", "Activar o desactivar acceso a usuarios"},

	{"roles.index", "roles", "index", "Configuración", "Ver roles y sus permisos asignados"},
	{"roles.create", "roles", "create", "Configuración", "Crear nuevos roles"},
	{"roles.edit", "roles", "edit", "Configuración", "Editar roles y modificar sus permisos"},
	{"roles.delete", "roles", "delete", "Configuración", "Eliminar roles del sistema"},
	{"permissions.manage", "permissions", "manage", "Sistema", "Gestionar la matriz de permisos (Solo Desarrollador)"},

	{"customers.index", "customers", "index", "Clientes", "Ver listado y detalles de clientes"},
	{"customers.create", "customers", "create", "Clientes", "Registrar nuevos clientes y contactos"},
	{"customers.edit", "customers", "edit", "Clientes", "Editar información comercial y fiscal de clientes"},
	{"customers.delete", "customers", "delete", "Clientes", "Eliminar clientes del sistema"},

	{"budgets.index", "budgets", "index", "Presupuestos", "Ver listado, detalles y costos de presupuestos"},
	{"budgets.create", "budgets", "create", "Presupuestos", "Crear nuevos presupuestos"},
	{"budgets.edit", "budgets", "edit", "Presupuestos", "Editar presupuestos, costos y estatus"},
	{"budgets.delete", "budgets", "delete", "Presupuestos", "Eliminar presupuestos"},
	{"budgets.payments.manage", "budgets", "payments.manage", "Presupuestos", "Registrar y eliminar pagos de proyectos"},
	{"budgets.files.manage", "budgets", "files.manage", "Presupuestos", "Subir y eliminar archivos adjuntos (planos, facturas)"},

	{"tickets.index", "tickets", "index", "Tickets", "Ver tablero de tickets y cronogramas"},
	{"tickets.create", "tickets", "create", "Tickets", "Generar nuevas órdenes de servicio (tickets)"},
	{"tickets.edit", "tickets", "edit", "Tickets", "Editar asignaciones, fechas y estatus de tickets"},
	{"tickets.delete", "tickets", "delete", "Tickets", "Eliminar tickets operativos"},
	{"tickets.tasks.manage", "tickets", "tasks.manage", "Tickets", "Gestionar tareas, check-lists y evidencias"},

	{"crm.analytics", "crm", "analytics", "Analíticas", "Ver tablero financiero y comercial (CRM)"},
	{"tickets.analytics", "tickets", "analytics", "Analíticas", "Ver tablero de rendimiento operativo"},
}

// PolicySyncer mirrors role grants and user assignments into casbin.
type PolicySyncer interface {
	SyncRolePolicies(ctx context.Context, roleID uint) error
	SyncUserRoles(ctx context.Context, userID uint, roleIDs []uint) error
}

type Seeder struct {
	permissionRepo permission.PermissionRepository
	roleRepo       permission.RoleRepository
	userRepo       user.UserRepository
	policySync     PolicySyncer
	logger         logger.Interface
}

func NewSeeder(
	permissionRepo permission.PermissionRepository,
	roleRepo permission.RoleRepository,
	userRepo user.UserRepository,
	policySync PolicySyncer,
	log logger.Interface,
) *Seeder {
	return &Seeder{
		permissionRepo: permissionRepo,
		roleRepo:       roleRepo,
		userRepo:       userRepo,
		policySync:     policySync,
		logger:         log,
	}
}

// Seed creates missing catalog permissions, guarantees the Super Admin role
// holds every one of them, assigns it to the bootstrap user, and pushes the
// result into the policy engine.
func (s *Seeder) Seed(ctx context.Context) error {
	allIDs, err := s.seedCatalog(ctx)
	if err != nil {
		return err
	}

	role, err := s.ensureSuperAdmin(ctx, allIDs)
	if err != nil {
		return err
	}

	if err := s.policySync.SyncRolePolicies(ctx, role.ID()); err != nil {
		return fmt.Errorf("failed to sync super admin policies: %w", err)
	}

	if err := s.assignToBootstrapUser(ctx, role); err != nil {
		return err
	}

	s.logger.Info("permission catalog seeded")
	return nil
}

func (s *Seeder) seedCatalog(ctx context.Context) ([]uint, error) {
	ids := make([]uint, 0, len(permissionCatalog))
	for _, entry := range permissionCatalog {
		existing, err := s.permissionRepo.GetByResourceAction(ctx, entry.resource, entry.action)
		if err != nil {
			return nil, fmt.Errorf("failed to look up permission %s: %w", entry.name, err)
		}
		if existing != nil {
			ids = append(ids, existing.ID())
			continue
		}

		p, err := permission.NewPermission(entry.name, entry.resource, entry.action, entry.category, entry.description)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog entry %s: %w", entry.name, err)
		}
		if err := s.permissionRepo.Save(ctx, p); err != nil {
			return nil, fmt.Errorf("failed to save permission %s: %w", entry.name, err)
		}
		ids = append(ids, p.ID())
	}
	return ids, nil
}

func (s *Seeder) ensureSuperAdmin(ctx context.Context, permissionIDs []uint) (*permission.Role, error) {
	role, err := s.roleRepo.GetByName(ctx, superAdminRole)
	if err != nil {
		return nil, fmt.Errorf("failed to look up super admin role: %w", err)
	}
	if role == nil {
		role, err = permission.NewRole(superAdminRole, "Acceso total al sistema")
		if err != nil {
			return nil, err
		}
		if err := s.roleRepo.Save(ctx, role); err != nil {
			return nil, fmt.Errorf("failed to create super admin role: %w", err)
		}
	}

	if err := s.roleRepo.ReplacePermissions(ctx, role.ID(), permissionIDs); err != nil {
		return nil, fmt.Errorf("failed to grant super admin permissions: %w", err)
	}
	role.SetPermissionIDs(permissionIDs)
	return role, nil
}

func (s *Seeder) assignToBootstrapUser(ctx context.Context, role *permission.Role) error {
	bootstrap, err := s.userRepo.GetByID(ctx, constants.BootstrapUserID)
	if err != nil {
		return fmt.Errorf("failed to look up bootstrap user: %w", err)
	}
	if bootstrap == nil {
		s.logger.Warnw("bootstrap user not found, super admin role left unassigned", "user_id", constants.BootstrapUserID)
		return nil
	}

	roleIDs, err := s.roleRepo.GetRoleIDsForUser(ctx, bootstrap.ID())
	if err != nil {
		return fmt.Errorf("failed to read bootstrap user roles: %w", err)
	}
	for _, id := range roleIDs {
		if id == role.ID() {
			return nil
		}
	}

	roleIDs = append(roleIDs, role.ID())
	if err := s.userRepo.ReplaceRoles(ctx, bootstrap.ID(), roleIDs); err != nil {
		return fmt.Errorf("failed to assign super admin role: %w", err)
	}
	if err := s.policySync.SyncUserRoles(ctx, bootstrap.ID(), roleIDs); err != nil {
		return fmt.Errorf("failed to sync bootstrap user roles: %w", err)
	}

	s.logger.Infow("super admin role assigned to bootstrap user", "user_id", bootstrap.ID())
	return nil
}
