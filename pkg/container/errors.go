package container

import "github.com/avandine/bootkit/pkg/errors"

var newContainerCode = errors.WithPrefix("CONTAINER")

var (
	ErrServiceAlreadyRegistered  = newContainerCode().New("service {{.tag}} is already registered")
	ErrInvalidFactory            = newContainerCode().New("factory for service {{.tag}} must be a non-nil Factory")
	ErrServiceNotFound           = newContainerCode().New("service {{.tag}} is not registered")
	ErrCircularResolution        = newContainerCode().New("circular resolution detected for service {{.tag}}")
	ErrUnexpectedServiceType     = newContainerCode().New("service {{.tag}} resolved to unexpected type {{.type}}")
	ErrInvalidComponentReference = newContainerCode().New("component reference expected, {{.type}} given")
	ErrComponentNotFound         = newContainerCode().New("component type {{.name}} is not registered")
	ErrInvalidComponentType      = newContainerCode().New("type {{.type}} does not satisfy the component contract")
	ErrComponentRegister         = newContainerCode().New("component {{.component}} failed to register")
	ErrComponentBoot             = newContainerCode().New("component {{.component}} failed to boot")
)
