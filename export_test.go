package deploycage

type DeployerExport = deployer
