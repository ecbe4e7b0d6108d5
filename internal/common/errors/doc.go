// Package errors 提供统一的错误处理系统
//
// 这个包实现了一个简化的错误处理框架，包括：
//   - 统一的错误代码定义（元素查询、数据集、配置、导出、工具、MCP）
//   - 基本的错误创建方法
//   - 沿错误链判断错误代码
//   - 简化的错误处理器
//
// 基本用法：
//
//  1. 创建错误：
//     err := errors.NewElementNotFoundError("symbol", "Xx")
//     wrappedErr := errors.WrapError(errors.ErrCodeConfigInvalid, "配置文件无效", originalErr)
//
//  2. 处理错误：
//     errors.HandleError(err)
//     userMessage := errors.GetUserFriendlyMessage(err)
//
//  3. 检查错误类型：
//     if errors.IsErrorCode(err, errors.ErrCodeElementNotFound) {
//     // 处理元素不存在
//     }
package errors
